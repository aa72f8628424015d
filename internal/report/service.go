package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/signintech/gopdf"

	"vetocheck-api/internal/diagnostic"
	"vetocheck-api/internal/logger"
)

type TelegramClient interface {
	SendMessage(chatID int64, text string) error
	SendDocument(chatID int64, fileData []byte, fileName string) error
}

type Service struct {
	tgClient  TelegramClient
	vetChatID int64
	log       zerolog.Logger
}

func NewService(tg TelegramClient, vetChatID int64) *Service {
	return &Service{
		tgClient:  tg,
		vetChatID: vetChatID,
		log:       logger.New("report"),
	}
}

// SendVetReport renders a PDF summary of a red-risk diagnostic and delivers it
// to the on-call veterinary chat. For immediate-urgency patterns a short text
// alert goes out before the document.
func (s *Service) SendVetReport(ctx context.Context, profile diagnostic.AnimalProfile, result diagnostic.DiagnosticResult) error {
	if s.vetChatID == 0 {
		s.log.Warn().Msg("vet chat id not configured, skipping report")
		return nil
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	// DejaVuSans covers the accented characters. Probe the usual install
	// locations.
	fontPaths := []string{
		"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	}

	var fontErr error
	fontLoaded := false
	for _, path := range fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return fmt.Errorf("failed to load font for PDF, is ttf-dejavu installed? last error: %w", fontErr)
	}

	if err := pdf.SetFont("DejaVu", "", 20); err != nil {
		return err
	}
	pdf.Cell(nil, "Rapport VetoCheck")
	pdf.Br(30)

	if err := pdf.SetFont("DejaVu", "", 12); err != nil {
		return err
	}
	pdf.Cell(nil, fmt.Sprintf("Date : %s", time.Now().Format("02.01.2006 15:04")))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Animal : %s (%s, %s, %d mois)", profile.Name, profile.Species, profile.Gender, profile.Age))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Niveau de risque : %s | Score : %d/100 | Incertitude : %d%% | Confiance : %d%%",
		result.RiskLevel, result.Score, result.UncertaintyRate, result.ConfidenceLevel))
	pdf.Br(15)
	if result.TimeToVet != "" {
		pdf.Cell(nil, fmt.Sprintf("Délai conseillé avant consultation : %s", result.TimeToVet))
		pdf.Br(15)
	}
	pdf.Br(10)

	if err := s.writeSection(&pdf, "Symptômes critiques :", result.CriticalSymptoms, "- Aucun symptôme critique."); err != nil {
		return err
	}

	patternLines := make([]string, 0, len(result.DangerousPatterns))
	for _, p := range result.DangerousPatterns {
		patternLines = append(patternLines, fmt.Sprintf("%s (%s) : %s", p.Name, p.UrgencyLevel, p.Description))
	}
	if err := s.writeSection(&pdf, "Combinaisons dangereuses :", patternLines, "- Aucune combinaison dangereuse détectée."); err != nil {
		return err
	}

	if err := s.writeSection(&pdf, "Recommandations :", result.Recommendations, ""); err != nil {
		return err
	}
	if err := s.writeSection(&pdf, "Actions de suivi :", result.FollowUpActions, ""); err != nil {
		return err
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	for _, p := range result.DangerousPatterns {
		if p.UrgencyLevel == diagnostic.UrgencyImmediate {
			alert := fmt.Sprintf("🚨 %s : %s — consultation immédiate requise pour %s", p.Name, p.Description, profile.Name)
			if err := s.tgClient.SendMessage(s.vetChatID, alert); err != nil {
				s.log.Error().Err(err).Msg("failed to send telegram alert")
			}
			break
		}
	}

	fileName := fmt.Sprintf("vetocheck_%s_%s.pdf", profile.Name, time.Now().Format("20060102_150405"))
	if err := s.tgClient.SendDocument(s.vetChatID, buf.Bytes(), fileName); err != nil {
		return fmt.Errorf("failed to send report document: %w", err)
	}

	s.log.Info().Str("file", fileName).Msg("vet report sent")
	return nil
}

func (s *Service) writeSection(pdf *gopdf.GoPdf, title string, lines []string, emptyText string) error {
	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return err
	}
	pdf.Cell(nil, title)
	pdf.Br(15)

	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return err
	}
	if len(lines) == 0 {
		if emptyText != "" {
			pdf.Cell(nil, emptyText)
			pdf.Br(12)
		}
		pdf.Br(10)
		return nil
	}
	for _, line := range lines {
		wrapped, _ := pdf.SplitText("- "+line, 500)
		for _, l := range wrapped {
			pdf.Cell(nil, l)
			pdf.Br(12)
		}
	}
	pdf.Br(10)
	return nil
}
