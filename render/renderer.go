// C:\Users\wasab\OneDrive\デスクトップ\BARCODE\render\renderer.go
package render

import (
	"fmt"
	"html"
	"strings"

	"barcodebuilder/barcode"
	"barcodebuilder/fields"
)

// 1文字ごとのセグメント (CSSクラス名)
var segmentClasses = [barcode.Length]string{
	"seg-capacity",
	"seg-year",
	"seg-lot", "seg-lot",
	"seg-series", "seg-series", "seg-series",
	"seg-check",
}

// RenderBarcodeHTML はバーコードを1文字ずつ <span> で囲んだHTMLを生成します。
// 表示側はクラス名でフィールドごとに色分けします。
func RenderBarcodeHTML(b barcode.Barcode) string {
	var sb strings.Builder
	code := b.String()

	sb.WriteString(`<div class="barcode">`)
	for i := 0; i < len(code) && i < barcode.Length; i++ {
		fmt.Fprintf(&sb, `<span class="%s" data-pos="%d">%s</span>`,
			segmentClasses[i], i+1, html.EscapeString(code[i:i+1]))
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

// RenderOptionsHTML はフィールドの選択リストを <option> 要素として生成します。
func RenderOptionsHTML(f *fields.Field, selected string) string {
	var sb strings.Builder
	for _, opt := range f.Options() {
		sel := ""
		if opt.Code == selected {
			sel = " selected"
		}
		fmt.Fprintf(&sb, `<option value="%s"%s>%s - %s</option>`,
			html.EscapeString(opt.Code), sel,
			html.EscapeString(opt.Code), html.EscapeString(opt.Label))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderSummaryHTML はバーコードの構成と各コードの意味を表形式で生成します。
// currentYear が0より大きければ残りの年コード数を注記します。
func RenderSummaryHTML(s *fields.Scheme, b barcode.Barcode, currentYear int) (string, error) {
	var sb strings.Builder

	sb.WriteString(`<table class="barcode-summary">`)
	sb.WriteString(`<thead><tr><th>Position</th><th>Field</th><th>Code</th><th>Value</th><th>Description</th></tr></thead>`)
	sb.WriteString(`<tbody>`)
	for _, f := range s.Fields() {
		info := f.Info()
		code, err := b.Code(f.Name())
		if err != nil {
			return "", err
		}
		v, err := f.Decode(code)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, `<tr class="%s"><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
			segmentClasses[info.Position-1],
			positionText(info.Position, info.Width),
			html.EscapeString(info.Title),
			html.EscapeString(code),
			html.EscapeString(f.Label(v)),
			html.EscapeString(info.Description))
	}
	for _, f := range s.Fields() {
		if note := f.Info().Note; note != "" {
			fmt.Fprintf(&sb, `<tr class="%s field-note"><td colspan="5">%s: %s</td></tr>`,
				segmentClasses[f.Info().Position-1], html.EscapeString(f.Info().Title), html.EscapeString(note))
		}
	}
	fmt.Fprintf(&sb, `<tr class="seg-check"><td>%d</td><td>Check Character</td><td>%s</td><td>-</td><td>Validation digit for error detection</td></tr>`,
		barcode.Length, html.EscapeString(b.CheckDigit()))
	sb.WriteString(`</tbody></table>`)

	fmt.Fprintf(&sb, `<p class="barcode-full">Complete Barcode: %s</p>`, html.EscapeString(b.String()))

	if currentYear > 0 {
		rest := s.YearsRemaining(currentYear)
		if rest == 0 {
			fmt.Fprintf(&sb, `<p class="barcode-warning">No year codes remain after %d.</p>`, s.LastYear())
		} else {
			fmt.Fprintf(&sb, `<p class="barcode-note">Only %d more years are possible with the current barcode schema (last: %d).</p>`, rest, s.LastYear())
		}
	}
	return sb.String(), nil
}

func positionText(pos, width int) string {
	if width <= 1 {
		return fmt.Sprintf("%d", pos)
	}
	return fmt.Sprintf("%d-%d", pos, pos+width-1)
}
