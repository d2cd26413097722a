package notification

import (
	"fmt"
	"time"
)

// formatDisplayTime renders an ISO timestamp as "02.01.2006 um 15:04 Uhr".
// An unparseable value is shown verbatim; a formatting problem must never
// block a send.
func formatDisplayTime(raw string) string {
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02.01.2006 um 15:04 Uhr")
		}
	}
	return raw
}

func customerBody(name, topic, formattedDate, joinURL string) string {
	return fmt.Sprintf(`
	<div style="font-family: 'Helvetica Neue', Arial, sans-serif; max-width: 600px; margin: 0 auto; color: #333; line-height: 1.6;">
		<div style="background-color: #f8f9fa; padding: 20px; text-align: center; border-radius: 8px 8px 0 0;">
			<h1 style="margin: 0; color: #3D7A77; font-size: 24px;">WTM Consulting</h1>
		</div>

		<div style="padding: 30px 20px; border: 1px solid #e0e0e0; border-top: none; border-radius: 0 0 8px 8px;">
			<h2 style="color: #2c3e50; margin-top: 0;">Terminbest&auml;tigung</h2>
			<p>Hallo %s,</p>
			<p>Ihr Termin wurde erfolgreich gebucht. Hier sind die Details:</p>

			<div style="background-color: #f0f7f7; padding: 20px; border-radius: 8px; margin: 25px 0;">
				<p style="margin: 5px 0;"><strong>Thema:</strong> %s</p>
				<p style="margin: 5px 0;"><strong>Zeit:</strong> %s</p>
				<p style="margin: 15px 0;">
					<a href="%s" style="background-color: #3D7A77; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Zum Zoom Meeting</a>
				</p>
			</div>

			<p style="font-size: 14px; color: #666;">Ein Kalendereintrag (ICS) befindet sich im Anhang.</p>

			<hr style="border: none; border-top: 1px solid #eee; margin: 30px 0;">

			<div style="font-size: 12px; color: #999; text-align: center;">
				<p>Powered by Vallit</p>
				<p>WTM Consulting | Kontakt: <a href="mailto:contact@vallit.net" style="color: #666;">contact@vallit.net</a></p>
			</div>
		</div>
	</div>`, name, topic, formattedDate, joinURL)
}

func operatorBody(p ConfirmationParams, formattedDate string) string {
	company := p.CompanyName
	if company == "" {
		company = "N/A"
	}
	sessionID := p.SessionID
	if sessionID == "" {
		sessionID = "Unknown"
	}

	row := func(field, value string) string {
		return fmt.Sprintf(`<tr><td style="padding: 8px; border-bottom: 1px solid #ddd;"><strong>%s</strong></td><td style="padding: 8px; border-bottom: 1px solid #ddd;">%s</td></tr>`, field, value)
	}

	return fmt.Sprintf(`
	<div style="font-family: monospace; max-width: 800px; margin: 0 auto; border: 1px solid #ccc; padding: 20px;">
		<h2 style="color: #d32f2f;">New Booking Alert</h2>
		<table style="width: 100%%; border-collapse: collapse;">
			<tr style="background-color: #eee;"><th style="padding: 8px; text-align: left;">Field</th><th style="padding: 8px; text-align: left;">Value</th></tr>
			%s%s%s%s%s%s%s%s
		</table>
		<p style="margin-top: 20px;"><em>This booking has been saved to the database.</em></p>
	</div>`,
		row("Customer Name", p.Name),
		row("Company", company),
		row("Email", fmt.Sprintf(`<a href="mailto:%s">%s</a>`, p.Email, p.Email)),
		row("Topic", p.Topic),
		row("Date/Time (UTC)", p.DateTime),
		row("Formatted Time", formattedDate),
		row("Zoom Link", fmt.Sprintf(`<a href="%s">%s</a>`, p.JoinURL, p.JoinURL)),
		row("Session ID", sessionID),
	)
}

func reminderBody(name, topic, formattedDate, joinURL string) string {
	return fmt.Sprintf(`
	<div style="font-family: 'Helvetica Neue', Arial, sans-serif; max-width: 600px; margin: 0 auto; color: #333; line-height: 1.6;">
		<h2 style="color: #3D7A77;">Terminerinnerung</h2>
		<p>Hallo %s,</p>
		<p>eine kurze Erinnerung an Ihren morgigen Termin:</p>
		<div style="background-color: #f0f7f7; padding: 20px; border-radius: 8px; margin: 25px 0;">
			<p style="margin: 5px 0;"><strong>Thema:</strong> %s</p>
			<p style="margin: 5px 0;"><strong>Zeit:</strong> %s</p>
			<p style="margin: 15px 0;">
				<a href="%s" style="background-color: #3D7A77; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Zum Zoom Meeting</a>
			</p>
		</div>
		<p style="font-size: 12px; color: #999;">WTM Consulting | Powered by Vallit</p>
	</div>`, name, topic, formattedDate, joinURL)
}
