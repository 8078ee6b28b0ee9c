// Package mailer delivers notify.Message values over SMTP using go-mail.
//
// Every message carries the configured sender as both From and Reply-To and
// a plain-text body. Each Send opens its own SMTP session.
package mailer
