package email

import (
	"crypto/tls"
	"fmt"
	"strconv"

	"github.com/wneessen/go-mail"
)

// Client sends transactional mail over SMTP.
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient creates a new email client.
func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail sends a single HTML email.
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("creating SMTP client (host=%s port=%d): %w", c.host, c.port, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("sending mail (host=%s port=%d): %w", c.host, c.port, err)
	}

	return nil
}

// ReservationInfo carries the reservation details rendered into the
// confirmation email.
type ReservationInfo struct {
	ReservationID int
	GuestName     string
	RoomNumber    int
	RoomType      string
	CheckIn       string
	CheckOut      string
	OccupantCount int
	Price         float64
}

// SendReservationConfirmation sends the booking confirmation to the guest.
func (c *Client) SendReservationConfirmation(to string, info ReservationInfo) error {
	subject := fmt.Sprintf("Reservation Confirmation #%d - %s", info.ReservationID, c.fromName)

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="margin: 0; padding: 20px; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table width="600" cellpadding="0" cellspacing="0" style="margin: 0 auto; background-color: #ffffff; border-radius: 8px; overflow: hidden;">
		<tr>
			<td style="background-color: #2c3e50; padding: 30px 20px; text-align: center;">
				<h1 style="color: #ffffff; margin: 0;">Reservation Confirmed</h1>
			</td>
		</tr>
		<tr>
			<td style="padding: 30px;">
				<p>Dear %s,</p>
				<p>Your reservation has been confirmed. The details are below:</p>
				<table width="100%%" cellpadding="8" cellspacing="0" style="border: 1px solid #e0e0e0; border-radius: 6px;">
					<tr><td><strong>Reservation ID</strong></td><td style="text-align: right;">#%d</td></tr>
					<tr><td><strong>Room</strong></td><td style="text-align: right;">%d (%s)</td></tr>
					<tr><td><strong>Check-in</strong></td><td style="text-align: right;">%s</td></tr>
					<tr><td><strong>Check-out</strong></td><td style="text-align: right;">%s</td></tr>
					<tr><td><strong>Guests</strong></td><td style="text-align: right;">%d</td></tr>
					<tr><td><strong>Nightly rate</strong></td><td style="text-align: right;">%.2f</td></tr>
				</table>
				<p style="margin-top: 25px;">Please present this email at check-in.</p>
			</td>
		</tr>
		<tr>
			<td style="background-color: #f8f9fa; padding: 20px; text-align: center; color: #999; font-size: 12px;">
				This is an automated message, please do not reply.
			</td>
		</tr>
	</table>
</body>
</html>
`,
		info.GuestName,
		info.ReservationID,
		info.RoomNumber,
		info.RoomType,
		info.CheckIn,
		info.CheckOut,
		info.OccupantCount,
		info.Price,
	)

	return c.SendEmail(to, subject, htmlBody)
}

// SendReservationCancellation notifies the guest that the reservation was
// cancelled.
func (c *Client) SendReservationCancellation(to string, reservationID int, cancellationDate string) error {
	subject := fmt.Sprintf("Reservation #%d Cancelled - %s", reservationID, c.fromName)

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="margin: 0; padding: 20px; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table width="600" cellpadding="0" cellspacing="0" style="margin: 0 auto; background-color: #ffffff; border-radius: 8px; overflow: hidden;">
		<tr>
			<td style="background-color: #2c3e50; padding: 30px 20px; text-align: center;">
				<h1 style="color: #ffffff; margin: 0;">Reservation Cancelled</h1>
			</td>
		</tr>
		<tr>
			<td style="padding: 30px;">
				<p>Your reservation #%d was cancelled on %s.</p>
				<p>The room is available for new bookings again. We hope to see you another time.</p>
			</td>
		</tr>
		<tr>
			<td style="background-color: #f8f9fa; padding: 20px; text-align: center; color: #999; font-size: 12px;">
				This is an automated message, please do not reply.
			</td>
		</tr>
	</table>
</body>
</html>
`, reservationID, cancellationDate)

	return c.SendEmail(to, subject, htmlBody)
}
