package variant

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strings"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"
)

// QuoteData is the content of a printable base-price quote.
type QuoteData struct {
	DeviceID   string
	DeviceName string
	Storage    string
	CityID     string
	Price      string
	IssuedAt   time.Time
}

// QuoteCode is the barcode payload identifying device and storage at pickup.
func QuoteCode(deviceID, storage string) string {
	return strings.ToUpper(deviceID + "|" + strings.ReplaceAll(storage, " ", ""))
}

func renderQuotePDF(q QuoteData) ([]byte, error) {
	if strings.TrimSpace(q.Price) == "" {
		return nil, fmt.Errorf("quote has no price")
	}
	deviceName := strings.TrimSpace(q.DeviceName)
	if deviceName == "" {
		deviceName = q.DeviceID
	}
	code := QuoteCode(q.DeviceID, q.Storage)
	barcodePNG, err := renderCode128PNG(code, 1200, 240)
	if err != nil {
		return nil, fmt.Errorf("render quote barcode: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetTitle("Trade-in Quote", false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	// Core fonts are cp1252; translate keeps quotes and accents intact.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, "Trade-in Quote", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 13)
	pdf.CellFormat(0, 8, tr(deviceName+" ("+q.Storage+")"), "", 1, "C", false, 0, "")
	if q.CityID != "" {
		pdf.CellFormat(0, 7, tr("City: "+q.CityID), "", 1, "C", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 34)
	pdf.CellFormat(0, 18, tr(q.Price), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, "*Final price depends on device condition", "", 1, "C", false, 0, "")

	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("quote-barcode", opt, bytes.NewReader(barcodePNG))
	pageW, _ := pdf.GetPageSize()
	imgW := 110.0
	imgH := 24.0
	y := pdf.GetY() + 10
	pdf.ImageOptions("quote-barcode", (pageW-imgW)/2, y, imgW, imgH, false, opt, 0, "")

	pdf.SetY(y + imgH + 3)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(code), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Issued: "+q.IssuedAt.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func renderCode128PNG(value string, width, height int) ([]byte, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, err
	}
	bounds := scaled.Bounds()
	normalized := image.NewNRGBA(bounds)
	draw.Draw(normalized, bounds, scaled, bounds.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, normalized); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
