package email

import (
	"crypto/rand"
	"crypto/tls"
	"fmt"
	"math/big"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// Service defines the interface for transactional email operations.
// Sending is best-effort: a failed delivery never fails the enrollment
// that triggered it.
type Service interface {
	SendWelcomeEmail(toEmail, toName string) error
	SendAssignmentNotification(toEmail, toName, studentName, scheduleText string) error
	SendVerificationCode(toEmail, toName, code string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
}

// serviceImpl implements Service
type serviceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewService creates a new email Service
func NewService(config SMTPConfig, logger zerolog.Logger) Service {
	return &serviceImpl{
		config: config,
		logger: logger,
	}
}

// SendWelcomeEmail sends the registration welcome email to a tutor.
func (s *serviceImpl) SendWelcomeEmail(toEmail, toName string) error {
	if s.devFallback("welcome", toEmail) {
		return nil
	}

	subject := "Bienvenido a TutorHub"
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">¡Bienvenido a TutorHub!</h2>
				<p>Hola %s,</p>
				<p>Tu registro se ha completado correctamente. En breve nos pondremos en contacto contigo para asignar un profesor particular.</p>
				<p>Un saludo,<br>El equipo de TutorHub</p>
			</div>
		</body>
		</html>
	`, toName)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// SendAssignmentNotification sends the tutor an email describing the weekly
// schedule agreed for the student. scheduleText comes from the schedule
// package ("Lunes de 16:00 a 18:00; ...").
func (s *serviceImpl) SendAssignmentNotification(toEmail, toName, studentName, scheduleText string) error {
	if s.devFallback("assignment", toEmail) {
		return nil
	}

	subject := "Clases asignadas - TutorHub"
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Clases asignadas</h2>
				<p>Hola %s,</p>
				<p>Hemos registrado las clases de %s con el siguiente horario:</p>
				<p><strong>%s</strong></p>
				<p>Un saludo,<br>El equipo de TutorHub</p>
			</div>
		</body>
		</html>
	`, toName, studentName, scheduleText)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// SendVerificationCode sends a short-lived verification code.
func (s *serviceImpl) SendVerificationCode(toEmail, toName, code string) error {
	if s.devFallback("verification", toEmail) {
		return nil
	}

	subject := "Tu código de verificación - TutorHub"
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<p>Hola %s,</p>
				<p>Tu código de verificación es: <strong>%s</strong></p>
				<p>Si no has solicitado este código, ignora este mensaje.</p>
				<p>Un saludo,<br>El equipo de TutorHub</p>
			</div>
		</body>
		</html>
	`, toName, code)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// devFallback logs instead of sending when SMTP credentials are not
// configured, so local development works without a mail server.
func (s *serviceImpl) devFallback(kind, toEmail string) bool {
	if s.config.Username != "" && s.config.Password != "" {
		return false
	}
	s.logger.Warn().
		Str("kind", kind).
		Str("toEmail", toEmail).
		Msg("SMTP credentials not configured - email not sent")
	return true
}

// sendHTMLEmail sends an HTML email
func (s *serviceImpl) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth(
		"",
		s.config.Username,
		s.config.Password,
		s.config.Host,
	)

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail),
		"To":           toEmail,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + htmlBody

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if !s.config.UseTLS {
		err := smtp.SendMail(
			serverAddress,
			auth,
			s.config.FromEmail,
			[]string{toEmail},
			[]byte(message),
		)
		if err != nil {
			s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}

	tlsConfig := &tls.Config{
		ServerName: s.config.Host,
	}

	conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create SMTP client")
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err = client.Auth(auth); err != nil {
		s.logger.Error().Err(err).Msg("SMTP authentication failed")
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err = client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write([]byte(message)); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return nil
}

// GenerateVerificationCode generates a random 6-digit verification code.
func GenerateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("secure random generation failed: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
