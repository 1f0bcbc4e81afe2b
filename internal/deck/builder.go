package deck

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/slidecast-io/slidecast/internal/slides"
)

const (
	fontName   = "Calibri"
	titleSize  = 28
	bulletSize = 18
)

// Build writes the slide records as a deck document, one page per slide,
// ready to be rendered to images. Page order matches record order.
func Build(recs []slides.Record, outPath string) error {
	if len(recs) == 0 {
		return fmt.Errorf("no slides to build")
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	for i, rec := range recs {
		if i > 0 {
			doc.AddPageBreak()
		}
		addTitle(doc, rec.Title)
		doc.AddParagraph("")
		for _, bullet := range rec.Bullets {
			p := doc.AddParagraph("")
			p.AddText("• " + bullet).Font(fontName).Size(bulletSize).Color("000000")
		}
	}

	if err := doc.SaveTo(outPath); err != nil {
		return fmt.Errorf("save deck: %w", err)
	}
	return nil
}

func addTitle(doc *docx.RootDoc, title string) {
	p := doc.AddParagraph("")
	p.AddText(title).Font(fontName).Size(titleSize).Color("000000").Bold(true)
}
