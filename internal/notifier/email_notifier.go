package notifier

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"

	config "github.com/arriagadabarbara756-spec/Restaurante-proyecto3/configs"
)

// SendOrderEmail mails the order confirmation through SES. Failures are the
// caller's to log; the order itself is already committed.
func SendOrderEmail(recipientEmail string, customerName string, orderID uint, totalAmount float64) error {
	cfg := config.LoadEmailConfig()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")),
	)
	if err != nil {
		return fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	client := ses.NewFromConfig(awsCfg)

	if cfg.SenderEmail == "" {
		return fmt.Errorf("sender email address is not configured in environment variables")
	}
	if recipientEmail == "" {
		return fmt.Errorf("recipient email address is empty")
	}

	subject := fmt.Sprintf("Pedido #%d confirmado - Restaurante Crunch", orderID)

	totalStr := fmt.Sprintf("%.0f", totalAmount)

	bodyHTML := fmt.Sprintf(`
        <html>
        <body>
            <p>Hola %s,</p>
            <p>Tu pedido #%d fue registrado correctamente.</p>
            <p><strong>Detalle:</strong></p>
            <ul>
                <li>Pedido: %d</li>
                <li>Total: $%s</li>
            </ul>
            <p>Gracias por tu compra.</p>
            <p>Restaurante Crunch</p>
        </body>
        </html>`, customerName, orderID, orderID, totalStr)

	bodyText := fmt.Sprintf(
		"Hola %s,\n\nTu pedido #%d fue registrado correctamente.\n\n"+
			"Detalle:\nPedido: %d\nTotal: $%s\n\n"+
			"Gracias por tu compra.\nRestaurante Crunch",
		customerName, orderID, orderID, totalStr)

	input := &ses.SendEmailInput{
		Source: aws.String(cfg.SenderEmail),
		Destination: &types.Destination{
			ToAddresses: []string{recipientEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(bodyHTML),
				},
				Text: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(bodyText),
				},
			},
		},
	}

	_, err = client.SendEmail(context.TODO(), input)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	zap.L().Info("order confirmation email sent",
		zap.Uint("order_id", orderID),
		zap.String("email", recipientEmail))
	return nil
}
