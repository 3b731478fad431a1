package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Freeeeeet/class_highlighter/internal/model"
	"github.com/Freeeeeet/class_highlighter/internal/render"
	"github.com/Freeeeeet/class_highlighter/internal/schedule"
	"github.com/Freeeeeet/class_highlighter/internal/source"
)

func main() {
	input := flag.String("in", "schedule.html", "saved schedule page")
	output := flag.String("out", "today.png", "output PNG file")
	selector := flag.String("selector", source.DefaultTableSelector, "CSS selector of the class table")
	at := flag.String("at", "", "moment to render as 2006-01-02T15:04 (default: now)")
	flag.Parse()

	now := time.Now()
	if *at != "" {
		parsed, err := time.ParseInLocation("2006-01-02T15:04", *at, time.Local)
		if err != nil {
			fmt.Printf("Ошибка разбора времени: %v\n", err)
			os.Exit(1)
		}
		now = parsed
	}

	ctx := context.Background()
	rows, err := source.NewFileTable(*input, *selector).Rows(ctx)
	if err != nil {
		fmt.Printf("Ошибка чтения таблицы: %v\n", err)
		os.Exit(1)
	}

	// без напоминаний: превью ничего не отправляет
	result, _ := schedule.NewScanner(nil).Scan(ctx, rows, now)

	imageData, err := render.DayImage(result, model.DefaultSettings())
	if err != nil {
		fmt.Printf("Ошибка генерации изображения: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, imageData, 0644); err != nil {
		fmt.Printf("Ошибка сохранения файла: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Изображение успешно сохранено в %s\n", *output)
	fmt.Printf("📅 День: %s (%s)\n", now.Format("02.01.2006"), result.Today)
	fmt.Printf("📊 Занятий: %d, пропущено строк: %d\n", len(result.Rows), result.Skipped)
	if banner, ok := render.Banner(result, model.DefaultSettings()); ok {
		fmt.Println(banner)
	}
}
