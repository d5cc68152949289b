package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendPaymentReceiptEmail mails a payment receipt to the patient. Requires
// SMTP_* environment configuration; callers should treat a failure as
// non-fatal since the payment itself has already been recorded.
func SendPaymentReceiptEmail(email, billID string, amount, outstanding float64) error {
	fromEmail := os.Getenv("SMTP_USER")

	m := gomail.NewMessage()
	m.SetHeader("From", fromEmail)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Payment Receipt")

	plain := fmt.Sprintf("We received your payment of %.2f towards bill %s. Outstanding balance: %.2f.",
		amount, billID, outstanding)
	m.SetBody("text/plain", plain)

	htmlBody := `
	<!DOCTYPE html>
	<html>
	<head>
		<title>Payment Receipt</title>
		<style>
			body {
				font-family: Arial, sans-serif;
				background-color: #f4f4f4;
				margin: 0;
				padding: 0;
			}
			.container {
				background-color: #ffffff;
				margin: 20px auto;
				padding: 20px;
				border-radius: 8px;
				box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
				max-width: 600px;
			}
			h1 {
				color: #333333;
			}
			p {
				color: #666666;
			}
			.amount {
				font-weight: bold;
				color: #007bff;
			}
		</style>
	</head>
	<body>
		<div class="container">
			<h1>Payment Receipt</h1>
			<p>We received your payment of <span class="amount">` + fmt.Sprintf("%.2f", amount) + `</span> towards bill ` + billID + `.</p>
			<p>Outstanding balance: <span class="amount">` + fmt.Sprintf("%.2f", outstanding) + `</span></p>
			<p>Thank you for your visit.</p>
		</div>
	</body>
	</html>
	`
	m.AddAlternative("text/html", htmlBody)

	smtpHost := os.Getenv("SMTP_HOST")
	smtpPortStr := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		log.Printf("Invalid SMTP_PORT value: %v", err)
		return err
	}

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	return d.DialAndSend(m)
}

// ReceiptMailConfigured reports whether the SMTP environment is set up.
func ReceiptMailConfigured() bool {
	return os.Getenv("SMTP_HOST") != "" && os.Getenv("SMTP_PORT") != ""
}
