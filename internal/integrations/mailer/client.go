package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"time"
)

const (
	otpSubject = "Mã xác thực EduManager"

	resultSent   = "sent"
	resultFailed = "failed"
)

const otpBodyTemplate = `<div style="font-family: Arial; padding: 20px; border: 1px solid #ddd; border-radius: 10px;">
    <h2 style="color: #4361ee;">Mã Xác Thực Bảo Mật</h2>
    <p>Mã OTP của bạn là: <b style="font-size: 24px; color: #ef233c; letter-spacing: 3px;">%s</b></p>
    <p>Mã này dùng để xác thực đăng ký hoặc đổi mật khẩu.</p>
</div>`

// sendFunc отправляет готовое письмо; подменяется в тестах
type sendFunc func(ctx context.Context, msg Message, raw []byte) error

// Client клиент для отправки писем через SMTP over TLS (порт 465)
type Client struct {
	cfg     Config
	timeout time.Duration
	send    sendFunc
	metrics Metrics
	log     Logger
}

// NewClient создает новый экземпляр почтового клиента
// metrics может быть nil
func NewClient(cfg Config, timeout time.Duration, metrics Metrics, log Logger) *Client {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	c := &Client{
		cfg:     cfg,
		timeout: timeout,
		metrics: metrics,
		log:     log,
	}
	c.send = c.sendSMTP
	return c
}

// SendOTP отправляет письмо с одноразовым кодом
func (c *Client) SendOTP(ctx context.Context, to, code string) error {
	addr, err := mail.ParseAddress(to)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidRecipient, to, err)
	}

	msg := Message{
		From:     c.cfg.From,
		To:       addr.Address,
		Subject:  otpSubject,
		HTMLBody: fmt.Sprintf(otpBodyTemplate, code),
	}

	if err := c.send(ctx, msg, BuildMessage(msg)); err != nil {
		c.incMail(resultFailed)
		c.log.Error("Mailer: failed to send OTP to %s: %v", msg.To, err)
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	c.incMail(resultSent)
	c.log.Info("Mailer: OTP sent to %s", msg.To)
	return nil
}

// BuildMessage собирает MIME письмо с HTML телом в base64
func BuildMessage(msg Message) []byte {
	var buf bytes.Buffer

	buf.WriteString("From: " + msg.From + "\r\n")
	buf.WriteString("To: " + msg.To + "\r\n")
	buf.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	buf.WriteString("Content-Transfer-Encoding: base64\r\n")
	buf.WriteString("\r\n")

	encoded := base64.StdEncoding.EncodeToString([]byte(msg.HTMLBody))
	for len(encoded) > 76 {
		buf.WriteString(encoded[:76] + "\r\n")
		encoded = encoded[76:]
	}
	buf.WriteString(encoded + "\r\n")

	return buf.Bytes()
}

func (c *Client) sendSMTP(ctx context.Context, msg Message, raw []byte) error {
	hostPort := net.JoinHostPort(c.cfg.Host, strconv.Itoa(c.cfg.Port))

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: c.timeout},
		Config:    &tls.Config{ServerName: c.cfg.Host, MinVersion: tls.VersionTLS12},
	}

	conn, err := dialer.DialContext(ctx, "tcp", hostPort)
	if err != nil {
		return fmt.Errorf("dial %s: %w", hostPort, err)
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	client, err := smtp.NewClient(conn, c.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if c.cfg.Username != "" {
		auth := smtp.PlainAuth("", c.cfg.Username, c.cfg.Password, c.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(msg.From); err != nil {
		return fmt.Errorf("smtp MAIL FROM: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("smtp RCPT TO: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("smtp write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close body: %w", err)
	}

	return client.Quit()
}

func (c *Client) incMail(result string) {
	if c.metrics != nil {
		c.metrics.IncMail(result)
	}
}
