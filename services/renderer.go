package services

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"
)

// renderer flows content blocks into the two page templates: "first" (header
// + footer, reduced frame) and "continuation" (footer only, full frame). The
// header is drawn on page one and never again; the footer on every page.
type renderer struct {
	pdf *fpdf.Fpdf
	geo PageGeometry

	headerPath string
	footerPath string

	y     float64 // cursor, top-down page coordinates
	atTop bool    // cursor sits at the top of a fresh frame

	headerDraws int
	footerDraws int
}

func newRenderer(geo PageGeometry, headerPath, footerPath string) *renderer {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(geo.Margin, geo.Margin, geo.Margin)
	pdf.SetCellMargin(0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Preventivo Noleggio Lungo Termine", false)

	// Pinned dates keep the output byte-identical across renders of the same
	// record and assets.
	epoch := time.Unix(0, 0).UTC()
	pdf.SetCreationDate(epoch)
	pdf.SetModificationDate(epoch)

	r := &renderer{
		pdf:        pdf,
		geo:        geo,
		headerPath: headerPath,
		footerPath: footerPath,
	}

	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() == 1 {
			r.drawHeader()
		}
	})
	pdf.SetFooterFunc(func() {
		r.drawFooter()
	})

	return r
}

// RenderQuote flows the assembled content sequence into the page templates
// and returns the finished PDF bytes. Header/footer unreadability has already
// been ruled out by ComputeGeometry; any failure here (malformed image data,
// fpdf-level errors) surfaces as a single *RenderError and no bytes.
func RenderQuote(blocks []ContentBlock, geo PageGeometry, headerPath, footerPath string) ([]byte, error) {
	return newRenderer(geo, headerPath, footerPath).render(blocks)
}

func (r *renderer) render(blocks []ContentBlock) ([]byte, error) {
	r.pdf.AddPage()
	r.y = r.geo.PageHeight - r.geo.BottomReserved - r.geo.FirstPageUsableHeight
	r.atTop = true

	for _, block := range blocks {
		switch b := block.(type) {
		case Paragraph:
			r.flowParagraph(b)
		case Spacer:
			r.flowSpacer(b)
		case ImageBlock:
			r.flowImage(b)
		}
		if r.pdf.Err() {
			break
		}
	}

	if err := r.pdf.Error(); err != nil {
		return nil, &RenderError{Err: err}
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, &RenderError{Err: err}
	}
	return buf.Bytes(), nil
}

// frameBottom is the lowest y a block may reach on any page.
func (r *renderer) frameBottom() float64 {
	return r.geo.PageHeight - r.geo.BottomReserved
}

// breakPage advances to the next page using the continuation template.
func (r *renderer) breakPage() {
	r.pdf.AddPage()
	r.y = r.geo.PageHeight - r.geo.BottomReserved - r.geo.ContinuationUsableHeight
	r.atTop = true
}

func (r *renderer) applyStyle(s Style) {
	r.pdf.SetFont(s.Font, s.Variant, s.Size)
	r.pdf.SetTextColor(s.Color.R, s.Color.G, s.Color.B)
}

// flowParagraph keeps the paragraph together: if it does not fit the
// remaining frame it moves whole to the next page. A paragraph taller than an
// entire continuation frame cannot be kept together anywhere and degrades to
// line-level flow.
func (r *renderer) flowParagraph(p Paragraph) {
	r.applyStyle(p.Style)
	lines := r.pdf.SplitText(p.Text, r.geo.UsableWidth)
	textHeight := float64(len(lines)) * p.Style.Leading

	spaceBefore := p.Style.SpaceBefore
	if r.atTop {
		spaceBefore = 0
	}

	if r.y+spaceBefore+textHeight > r.frameBottom() {
		if textHeight > r.geo.ContinuationUsableHeight {
			r.flowLines(lines, p.Style)
			r.y += p.Style.SpaceAfter
			return
		}
		r.breakPage()
		spaceBefore = 0
	}

	r.y += spaceBefore
	r.pdf.SetXY(r.geo.Margin, r.y)
	r.pdf.MultiCell(r.geo.UsableWidth, p.Style.Leading, p.Text, "", p.Style.Align, false)
	r.y = r.pdf.GetY() + p.Style.SpaceAfter
	r.atTop = false
}

// flowLines is the oversized-paragraph fallback: individual lines flow across
// page breaks.
func (r *renderer) flowLines(lines []string, s Style) {
	for _, line := range lines {
		if r.y+s.Leading > r.frameBottom() {
			r.breakPage()
		}
		r.pdf.SetXY(r.geo.Margin, r.y)
		r.pdf.MultiCell(r.geo.UsableWidth, s.Leading, line, "", s.Align, false)
		r.y = r.pdf.GetY()
		r.atTop = false
	}
}

func (r *renderer) flowSpacer(s Spacer) {
	if r.y+s.Height > r.frameBottom() {
		// The page break consumes the spacer.
		r.breakPage()
		return
	}
	r.y += s.Height
	r.atTop = false
}

// flowImage places a centered image scaled down (never up) to fit the block's
// bounds. Unreadable or degenerate image data renders as nothing rather than
// failing the document.
func (r *renderer) flowImage(img ImageBlock) {
	pixelWidth, pixelHeight, err := readImageSize(img.Path)
	if err != nil || pixelWidth <= 0 || pixelHeight <= 0 {
		return
	}

	// Pixel dimensions map 1:1 to points at fpdf's default 72 dpi.
	drawWidth := float64(pixelWidth)
	drawHeight := float64(pixelHeight)
	scale := 1.0
	if drawWidth > img.MaxWidth {
		scale = img.MaxWidth / drawWidth
	}
	if drawHeight*scale > img.MaxHeight {
		scale = img.MaxHeight / drawHeight
	}
	drawWidth *= scale
	drawHeight *= scale

	if r.y+drawHeight > r.frameBottom() {
		r.breakPage()
	}

	x := r.geo.Margin + (r.geo.UsableWidth-drawWidth)/2
	r.pdf.ImageOptions(img.Path, x, r.y, drawWidth, drawHeight, false, fpdf.ImageOptions{}, 0, "")
	r.y += drawHeight
	r.atTop = false
}

// drawHeader paints the brand header across the usable width, right below
// the top margin. First page only; a zero computed height paints nothing.
func (r *renderer) drawHeader() {
	r.headerDraws++
	if r.geo.HeaderHeight <= 0 {
		return
	}
	r.pdf.ImageOptions(r.headerPath, r.geo.Margin, r.geo.Margin,
		r.geo.UsableWidth, r.geo.HeaderHeight, false, fpdf.ImageOptions{}, 0, "")
}

// drawFooter paints the brand footer across the full page width at the fixed
// bottom offset. Every page.
func (r *renderer) drawFooter() {
	r.footerDraws++
	if r.geo.FooterHeight <= 0 {
		return
	}
	r.pdf.ImageOptions(r.footerPath, 0, r.geo.PageHeight-r.geo.BottomOffset-r.geo.FooterHeight,
		r.geo.PageWidth, r.geo.FooterHeight, false, fpdf.ImageOptions{}, 0, "")
}
