package service

import (
	"fmt"
	"log"
	"time"

	"estacioneai/internal/db"
)

// SenderService composes and dispatches the outbound notifications. Sending
// happens on a goroutine so a slow provider never delays the request that
// triggered it, and a failure never undoes the committed mutation.
type SenderService struct {
	adminEmail string
}

func NewSenderService(adminEmail string) *SenderService {
	return &SenderService{adminEmail: adminEmail}
}

func (s *SenderService) SendReservationConfirmation(toEmail, toPhone, spotNumber string, res db.Reservation) {
	loc, errLoc := time.LoadLocation("America/Sao_Paulo")
	if errLoc != nil {
		loc = time.FixedZone("BRT", -3*60*60)
	}

	start := res.StartTime.In(loc).Format("02/01/2006 15:04")
	end := res.EndTime.In(loc).Format("02/01/2006 15:04")

	subject := fmt.Sprintf("[EstacioneAI] Confirmação de Reserva - Vaga %s", spotNumber)
	plainBody := fmt.Sprintf(
		"Sua reserva foi confirmada!\n\n"+
			"Vaga: %s\n"+
			"Período: %s até %s\n"+
			"Custo Total: R$ %s\n\n"+
			"Obrigado por usar o EstacioneAI!",
		spotNumber, start, end, res.TotalCost,
	)
	htmlBody := fmt.Sprintf(
		"<h2>Reserva Confirmada!</h2>"+
			"<p>Sua reserva foi confirmada com sucesso.</p><br>"+
			"<p><strong>Vaga:</strong> %s</p>"+
			"<p><strong>Período:</strong> %s até %s</p>"+
			"<p><strong>Custo Total:</strong> R$ %s</p><br>"+
			"<p>Obrigado por usar o EstacioneAI!</p>",
		spotNumber, start, end, res.TotalCost,
	)

	if toEmail != "" {
		go func() {
			if err := SendEmailWithSendGrid(toEmail, "", subject, plainBody, htmlBody); err != nil {
				log.Printf("WARNING: confirmation email for reservation %s failed: %v", res.ID, err)
			}
		}()
	}

	if toPhone != "" {
		sms := fmt.Sprintf("EstacioneAI: sua reserva da vaga %s está confirmada!\nCheck-in: %s.\nMais detalhes no seu email.", spotNumber, start)
		go func() {
			if err := SendSMS(toPhone, sms); err != nil {
				log.Printf("WARNING: confirmation SMS for reservation %s failed: %v", res.ID, err)
			}
		}()
	}
}

func (s *SenderService) SendContactNotification(msg db.ContactMessage) {
	if s.adminEmail == "" {
		log.Println("WARNING: admin email not configured, skipping contact notification")
		return
	}

	subject := fmt.Sprintf("[EstacioneAI] Nova mensagem de contato: %s", msg.Subject)
	plainBody := fmt.Sprintf(
		"Nova mensagem de contato recebida:\n\n"+
			"Nome: %s\n"+
			"Email: %s\n"+
			"Assunto: %s\n\n"+
			"Mensagem:\n%s",
		msg.Name, msg.Email, msg.Subject, msg.Message,
	)
	htmlBody := fmt.Sprintf(
		"<h2>Nova mensagem de contato recebida</h2>"+
			"<p><strong>Nome:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Assunto:</strong> %s</p><br>"+
			"<p><strong>Mensagem:</strong></p><p>%s</p>",
		msg.Name, msg.Email, msg.Subject, msg.Message,
	)

	go func() {
		if err := SendEmailWithSendGrid(s.adminEmail, "", subject, plainBody, htmlBody); err != nil {
			log.Printf("WARNING: contact notification email for message %s failed: %v", msg.ID, err)
		}
	}()
}
