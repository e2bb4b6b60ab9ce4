package mailer

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"github.com/ccltech/tienda-api/internal/application/pagos"
	"github.com/ccltech/tienda-api/internal/domain/entity"
	"github.com/ccltech/tienda-api/pkg/config"
)

var _ pagos.Mailer = (*GomailSender)(nil)

// GomailSender envía correos transaccionales vía SMTP.
type GomailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailSender construye el mailer a partir de la configuración SMTP.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// EnviarConfirmacion manda el correo de compra confirmada. Si adjuntoPDF no es
// nil, el recibo va adjunto como recibo-<orden>.pdf.
func (s *GomailSender) EnviarConfirmacion(destinatario, nombre string, orden *entity.Orden, adjuntoPDF []byte) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", destinatario)
	m.SetHeader("Subject", fmt.Sprintf("Confirmación de compra #%s", orden.ID))
	m.SetBody("text/html", cuerpoConfirmacion(nombre, orden))

	if adjuntoPDF != nil {
		nombreAdjunto := fmt.Sprintf("recibo-%s.pdf", orden.ID)
		m.Attach(nombreAdjunto, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(adjuntoPDF)
			return err
		}))
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar confirmación: %w", err)
	}
	return nil
}

func cuerpoConfirmacion(nombre string, orden *entity.Orden) string {
	return fmt.Sprintf(`
		<h2>¡Gracias por tu compra, %s!</h2>
		<p>Tu orden <strong>%s</strong> fue pagada correctamente.</p>
		<p>Total: <strong>$%s</strong></p>
		<p>Adjuntamos el recibo de tu compra. Pronto recibirás novedades del envío a %s, %s.</p>
	`, nombre, orden.ID, orden.Total.StringFixed(2), orden.Envio.City, orden.Envio.Country)
}
