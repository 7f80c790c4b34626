package utils

import (
	"cybercourse/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Generic Send Email. Uses SendGrid when an API key is configured,
// plain SMTP otherwise. Delivery is best effort everywhere: callers
// log the error and move on, the purchase state never depends on it.
func SendEmail(to []string, subject string, htmlBody string) error {
	if config.AppConfig.SendGridApiKey != "" {
		return sendViaSendGrid(to, subject, htmlBody)
	}
	return sendViaSMTP(to, subject, htmlBody)
}

func sendViaSMTP(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: CyberCourse Academy <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

func sendViaSendGrid(to []string, subject string, htmlBody string) error {
	from := mail.NewEmail("CyberCourse Academy", config.AppConfig.EmailSender)

	for _, recipient := range to {
		message := mail.NewSingleEmail(from, subject, mail.NewEmail("", recipient), "", htmlBody)
		resp, err := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey).Send(message)
		if err != nil {
			log.Printf("Error sending email via SendGrid to %s: %v", recipient, err)
			return err
		}
		if resp.StatusCode >= 400 {
			log.Printf("SendGrid rejected email to %s: %d %s", recipient, resp.StatusCode, resp.Body)
			return fmt.Errorf("sendgrid status %d", resp.StatusCode)
		}
	}
	return nil
}

// HTML wrapper shared by all triggers
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #0B0B14; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #0F172A; padding: 30px; text-align: center; }
			.header h1 { color: #22D3EE; margin: 0; font-size: 24px; letter-spacing: 2px; }
			.content { padding: 40px 30px; color: #0F172A; line-height: 1.6; }
			.content h2 { color: #0F172A; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #22D3EE; color: #0F172A; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #ECFEFF; padding: 15px; border-radius: 4px; border-left: 4px solid #22D3EE; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CYBERCOURSE ACADEMY</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 CyberCourse Academy. All rights reserved.<br>
				For support: %s
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent, config.AppConfig.SupportEmail)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, username string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your CyberCourse Academy account is ready. Browse the catalog, pick a course
		and complete the UPI payment to get started.</p>
		<div class="info-box">Course access is granted after manual payment verification,
		usually within 1-2 hours.</div>
	`, username)

	if err := SendEmail([]string{email}, "Welcome to CyberCourse Academy", getEmailTemplate("Welcome Aboard!", body)); err != nil {
		log.Printf("Error sending welcome email to %s: %v", email, err)
	}
}

// 2. Purchase approved — carries the course link the library unlocks.
func SendCourseAccessEmail(email, username, courseName, courseLink string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your payment has been approved! You now have access to:</p>
		<div class="info-box"><strong>%s</strong></div>
		<a class="btn" href="%s">Access Course</a>
		<p>The course is also available any time from your library.</p>
	`, username, courseName, courseLink)

	subject := fmt.Sprintf("Course Access Granted - %s", courseName)
	if err := SendEmail([]string{email}, subject, getEmailTemplate("Payment Approved", body)); err != nil {
		log.Printf("Error sending course access email to %s: %v", email, err)
	}
}

// 3. Stale pending digest for the admin
func SendPendingDigestEmail(adminEmail string, lines []string) {
	body := fmt.Sprintf(`
		<p>The following purchase requests have been pending for more than %d hours:</p>
		<div class="info-box">%s</div>
		<p>Review them in the admin panel.</p>
	`, config.AppConfig.PendingMaxAgeHours, strings.Join(lines, "<br>"))

	if err := SendEmail([]string{adminEmail}, "Pending payment approvals", getEmailTemplate("Purchases Awaiting Review", body)); err != nil {
		log.Printf("Error sending pending digest to %s: %v", adminEmail, err)
	}
}
