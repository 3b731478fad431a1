package render

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/Freeeeeet/class_highlighter/internal/model"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Константы размеров и отступов
const (
	imageWidth       = 900
	imageHeight      = 1000
	headerHeight     = 90
	leftLabelsWidth  = 70
	legendWidth      = 150
	dayPaddingX      = 10
	minRowHeight     = 18.0
	rowBorderRadius  = 6.0
	shadowOffset     = 3.0
	hourPaddingTop   = 1
	hourPaddingBot   = 1
	defaultMinHour   = 8
	defaultMaxHour   = 18
	maxCourseRunes   = 48
	legendBoxW       = 20.0
	legendBoxH       = 14.0
	legendItemMargin = 14.0
)

// Цветовая схема
var (
	bgColor          = color.RGBA{245, 246, 248, 255}
	columnColor      = color.NRGBA{235, 236, 238, 255}
	textColor        = color.RGBA{80, 85, 90, 220}
	hourLabelColor   = color.RGBA{110, 115, 120, 200}
	hourLineColor    = color.NRGBA{150, 150, 150, 255}
	currentTimeColor = color.NRGBA{255, 80, 80, 200}
	shadowColor      = color.RGBA{0, 0, 0, 20}
	fallbackColor    = color.RGBA{220, 220, 220, 255}
	legendTextColor  = color.RGBA{70, 74, 78, 220}
)

// hourRange содержит диапазон часов для отображения
type hourRange struct {
	start int
	end   int
	total int
}

// DayImage рисует PNG с занятиями дня, раскрашенными по статусу
func DayImage(result model.ScanResult, settings model.Settings) ([]byte, error) {
	hours := calculateHourRange(result.Rows)

	dc := createCanvas()
	columnWidth := imageWidth - leftLabelsWidth - legendWidth
	columnHeight := imageHeight - headerHeight
	cellHeight := float64(columnHeight) / float64(hours.total)

	setFont(dc)
	drawHeader(dc, result)
	drawHourLabels(dc, hours, cellHeight)
	drawColumn(dc, columnWidth, columnHeight, hours, cellHeight)
	for _, row := range result.Rows {
		drawRow(dc, row, settings, columnWidth, hours, cellHeight)
	}
	drawCurrentTimeLine(dc, result, hours, cellHeight, columnWidth)
	drawLegend(dc, settings, columnWidth)

	return encodeImage(dc)
}

// setFont встроенный моноширинный шрифт
func setFont(dc *gg.Context) {
	dc.SetFontFace(basicfont.Face7x13)
}

// calculateHourRange определяет диапазон часов по занятиям дня
func calculateHourRange(rows []model.RowStatus) hourRange {
	minHour := 24
	maxHour := 0

	for _, row := range rows {
		startH := row.Start.Hour()
		endH := row.End.Hour()
		if row.End.Minute() > 0 {
			endH++
		}
		if startH < minHour {
			minHour = startH
		}
		if endH > maxHour {
			maxHour = endH
		}
	}

	if minHour == 24 {
		minHour = defaultMinHour
		maxHour = defaultMaxHour
	}

	startHour := max(minHour-hourPaddingTop, 0)
	endHour := min(maxHour+hourPaddingBot, 24)
	if endHour <= startHour {
		endHour = startHour + 1
	}

	return hourRange{
		start: startHour,
		end:   endHour,
		total: endHour - startHour,
	}
}

// createCanvas создает новый контекст рисования с фоном
func createCanvas() *gg.Context {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()
	return dc
}

// drawHeader рисует дату и число занятий
func drawHeader(dc *gg.Context, result model.ScanResult) {
	title := result.Now.Format("Monday, 02 January 2006")
	subtitle := fmt.Sprintf("%d classes today", len(result.Rows))

	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, float64(leftLabelsWidth), float64(headerHeight)/3, 0, 0.5)
	dc.DrawStringAnchored(subtitle, float64(leftLabelsWidth), float64(headerHeight)/3+20, 0, 0.5)
}

// drawHourLabels рисует колонку с часами слева
func drawHourLabels(dc *gg.Context, hours hourRange, cellHeight float64) {
	dc.SetColor(hourLabelColor)

	for hIdx := 0; hIdx <= hours.total; hIdx++ {
		y := float64(headerHeight) + float64(hIdx)*cellHeight
		dc.DrawStringAnchored(formatHourLabel(hours.start+hIdx), float64(leftLabelsWidth)-10, y, 1, 0.5)
	}
}

// drawColumn рисует фон дня и линии часов
func drawColumn(dc *gg.Context, columnWidth, columnHeight int, hours hourRange, cellHeight float64) {
	x := float64(leftLabelsWidth)
	y := float64(headerHeight)

	dc.SetColor(columnColor)
	dc.DrawRectangle(x, y, float64(columnWidth), float64(columnHeight))
	dc.Fill()

	dc.SetLineWidth(0.3)
	dc.SetColor(hourLineColor)
	for hIdx := 0; hIdx <= hours.total; hIdx++ {
		hy := y + float64(hIdx)*cellHeight
		dc.DrawLine(x, hy, x+float64(columnWidth), hy)
		dc.Stroke()
	}
}

// drawRow рисует одно занятие
func drawRow(dc *gg.Context, row model.RowStatus, settings model.Settings, columnWidth int, hours hourRange, cellHeight float64) {
	pair := settings.Colors.For(row.Status.Kind)
	fillColor := parseHexColor(pair.Bg)
	labelColor := parseHexColor(pair.TextColor)
	if !settings.HighlightRows {
		fillColor = fallbackColor
		labelColor = color.RGBA{20, 24, 28, 230}
	}

	x := float64(leftLabelsWidth + dayPaddingX)
	rowY := float64(headerHeight) + (hourOf(row.Start)-float64(hours.start))*cellHeight
	rowHeight := max((hourOf(row.End)-hourOf(row.Start))*cellHeight, minRowHeight)
	rowWidth := float64(columnWidth - dayPaddingX*2)

	// Тень
	dc.SetColor(shadowColor)
	dc.DrawRoundedRectangle(x+shadowOffset, rowY+2+shadowOffset, rowWidth, rowHeight-4, rowBorderRadius)
	dc.Fill()

	dc.SetColor(fillColor)
	dc.DrawRoundedRectangle(x, rowY+2, rowWidth, rowHeight-4, rowBorderRadius)
	dc.Fill()

	// Рамка
	dc.SetColor(darkenColor(fillColor, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x, rowY+2, rowWidth, rowHeight-4, rowBorderRadius)
	dc.Stroke()

	dc.SetColor(labelColor)
	title := row.Start.Format("15:04") + "-" + row.End.Format("15:04") + "  " + truncate(row.Entry.Course(), maxCourseRunes)
	dc.DrawStringAnchored(title, x+8, rowY+16, 0, 0)

	if rowHeight > 36 {
		var details string
		if settings.ShowInlineStatus {
			details = row.Status.DisplayText
		}
		if row.Entry.Location != "" {
			if details != "" {
				details += "  •  "
			}
			details += row.Entry.Location
		}
		if details != "" {
			dc.DrawStringAnchored(truncate(details, maxCourseRunes+12), x+8, rowY+32, 0, 0)
		}
	}
}

// drawCurrentTimeLine рисует красную линию текущего времени
func drawCurrentTimeLine(dc *gg.Context, result model.ScanResult, hours hourRange, cellHeight float64, columnWidth int) {
	if result.Now.IsZero() {
		return
	}

	currentHour := hourOf(result.Now)
	if currentHour < float64(hours.start) || currentHour > float64(hours.end) {
		return
	}

	y := float64(headerHeight) + (currentHour-float64(hours.start))*cellHeight
	dc.SetColor(currentTimeColor)
	dc.SetLineWidth(2.0)
	dc.DrawLine(float64(leftLabelsWidth), y, float64(leftLabelsWidth+columnWidth), y)
	dc.Stroke()
}

// drawLegend рисует легенду справа
func drawLegend(dc *gg.Context, settings model.Settings, columnWidth int) {
	liX := float64(leftLabelsWidth + columnWidth + 16)
	liY := float64(headerHeight) + 10

	legendItems := []struct {
		Label string
		Kind  model.StatusKind
	}{
		{"Upcoming", model.StatusUpcoming},
		{"In progress", model.StatusOngoing},
		{"Ended", model.StatusEnded},
	}

	for _, item := range legendItems {
		dc.SetColor(parseHexColor(settings.Colors.For(item.Kind).Bg))
		dc.DrawRoundedRectangle(liX, liY, legendBoxW, legendBoxH, 3)
		dc.Fill()

		dc.SetColor(legendTextColor)
		dc.DrawStringAnchored(item.Label, liX+legendBoxW+8, liY+legendBoxH/2, 0, 0.5)
		liY += legendBoxH + legendItemMargin
	}
}

// encodeImage кодирует изображение в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// parseHexColor разбирает "#rrggbb" или "#rgb"; неверный формат даёт серый
func parseHexColor(hex string) color.RGBA {
	c := color.RGBA{A: 255}
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}

	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R, c.G, c.B = c.R*17, c.G*17, c.B*17
	default:
		return fallbackColor
	}
	if err != nil {
		return fallbackColor
	}
	return c
}

// darkenColor затемняет цвет на указанный множитель
func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func hourOf(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60.0
}

func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes-3]) + "..."
}

// формат числа с двумя цифрами
func formatTwoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func formatHourLabel(h int) string {
	return formatTwoDigits(h) + ":00"
}
