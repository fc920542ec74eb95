// Package email implementa el despacho de documentos por correo usando Resend.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/tu-usuario/gestion-ti/internal/application/billing"
	"github.com/tu-usuario/gestion-ti/pkg/logger"
)

var _ billing.EmailSender = (*ResendService)(nil)

// ResendService envía cotizaciones y facturas con el PDF adjunto.
type ResendService struct {
	client *resend.Client
	from   string
	log    *logger.Logger
}

// NewResendService construye el servicio con la API key y el remitente.
func NewResendService(apiKey, from string, log *logger.Logger) *ResendService {
	return &ResendService{
		client: resend.NewClient(apiKey),
		from:   from,
		log:    log,
	}
}

// SendDocumento envía el correo con el PDF adjunto y devuelve el id del
// email asignado por Resend.
func (s *ResendService) SendDocumento(ctx context.Context, para, asunto, html, nombreAdjunto string, pdf []byte) (string, error) {
	request := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{para},
		Subject: asunto,
		Html:    html,
		Attachments: []*resend.Attachment{
			{
				Filename:    nombreAdjunto,
				Content:     pdf,
				ContentType: "application/pdf",
			},
		},
	}

	result, err := s.client.Emails.SendWithContext(ctx, request)
	if err != nil {
		return "", fmt.Errorf("enviar email via Resend: %w", err)
	}

	s.log.Info().
		Str("email_id", result.Id).
		Str("to", para).
		Str("adjunto", nombreAdjunto).
		Msg("documento enviado por correo")

	return result.Id, nil
}
