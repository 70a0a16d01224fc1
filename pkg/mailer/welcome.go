package mailer

import (
	"fmt"
	"html"
)

// WelcomeJob builds the signup welcome email for a new account.
func WelcomeJob(to, username string) EmailJob {
	return EmailJob{
		To:      to,
		Subject: "Welcome to TodoApp",
		Text: fmt.Sprintf(
			"Hi %s,\n\nYour TodoApp account is ready. Sign in and start adding todos.\n",
			username,
		),
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your TodoApp account is ready. Sign in and start adding todos.</p>",
			html.EscapeString(username),
		),
	}
}
