package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/sirupsen/logrus"

	"kanjiquest/internal/models"
)

// sesAPI is the part of the SES client the email service uses
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// EmailService handles sending emails via Amazon SES
type EmailService struct {
	client    sesAPI
	fromEmail string
	fromName  string
	enabled   bool
	log       logrus.FieldLogger
}

// NewEmailService creates a new email service. An empty fromEmail yields a
// disabled service that skips every send.
func NewEmailService(ctx context.Context, awsRegion, fromEmail, fromName string, log logrus.FieldLogger) (*EmailService, error) {
	if fromEmail == "" {
		log.Info("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false, log: log}, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(awsRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.WithFields(logrus.Fields{"from": fromEmail, "region": awsRegion}).Info("Email service enabled")
	return newEmailService(sesv2.NewFromConfig(cfg), fromEmail, fromName, log), nil
}

func newEmailService(client sesAPI, fromEmail, fromName string, log logrus.FieldLogger) *EmailService {
	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
		log:       log,
	}
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendWeeklyReport mails a parent the week's progress of their child
func (s *EmailService) SendWeeklyReport(ctx context.Context, toEmail string, summary models.LearningSummary, week []models.GameResult) error {
	if !s.enabled {
		s.log.WithField("to", toEmail).Debug("Skipping email send (service disabled): weekly report")
		return ErrEmailDisabled
	}

	subject := fmt.Sprintf("%s's KanjiQuest week", summary.PlayerName)
	htmlBody, textBody := renderWeeklyReport(summary, week)
	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

func renderWeeklyReport(summary models.LearningSummary, week []models.GameResult) (string, string) {
	cleared := 0
	for _, r := range week {
		if r.Cleared {
			cleared++
		}
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Hi,\n\nHere is how %s did on KanjiQuest this week.\n\n", summary.PlayerName)
	fmt.Fprintf(&text, "Games this week: %d (%d cleared)\n", len(week), cleared)
	fmt.Fprintf(&text, "Games overall: %d\n", summary.TotalGamesPlayed)
	fmt.Fprintf(&text, "Average accuracy: %d%%\n", summary.AverageAccuracy)
	fmt.Fprintf(&text, "Kanji mastered: %d\n", summary.KanjiMastered)
	fmt.Fprintf(&text, "Characters collected: %d (%d%%)\n", summary.CharacterCount, summary.CollectionRate)
	fmt.Fprintf(&text, "Login streak: %d days\n", summary.LoginStreak)
	text.WriteString("\n---\nThis is an automated email from KanjiQuest. Please do not reply.\n")

	var rows strings.Builder
	for _, r := range week {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%d/%d</td><td>%s</td></tr>",
			r.CreatedAt.UTC().Format("Mon 01/02"), html.EscapeString(string(r.Mode)), html.EscapeString(r.StageID),
			r.Score, r.MaxScore, html.EscapeString(string(r.Rank)))
	}

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #e2574a; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
		td { padding: 4px 8px; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header"><h1>%s's week</h1></div>
		<div class="content">
			<p>Games this week: <strong>%d</strong> (%d cleared)</p>
			<p>Average accuracy: <strong>%d%%</strong> &middot; Kanji mastered: <strong>%d</strong></p>
			<p>Characters collected: %d (%d%%) &middot; Login streak: %d days</p>
			<table>%s</table>
		</div>
		<div class="footer"><p>This is an automated email from KanjiQuest. Please do not reply.</p></div>
	</div>
</body>
</html>
`, html.EscapeString(summary.PlayerName), len(week), cleared, summary.AverageAccuracy, summary.KanjiMastered,
		summary.CharacterCount, summary.CollectionRate, summary.LoginStreak, rows.String())

	return htmlBody, text.String()
}

// sendEmail sends an email using Amazon SES
func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	entry := s.log.WithFields(logrus.Fields{"to": toEmail, "subject": subject})
	if result != nil && result.MessageId != nil {
		entry = entry.WithField("message_id", *result.MessageId)
	}
	entry.Info("Email sent successfully")
	return nil
}
