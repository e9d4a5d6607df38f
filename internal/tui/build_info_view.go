// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/MKhiriev/go-letters-client/models"
)

const appTitle = "Генератор писем о просрочке"

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Название приложения", appTitle},
		{"Версия", valueOrNA(info.BuildVersion())},
		{"Дата", valueOrNA(info.BuildDate())},
		{"Коммит", valueOrNA(info.BuildCommit())},
		{"Среда", fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, r[0]+": "+r[1])
	}

	return renderPage("О ПРОГРАММЕ", strings.Join(lines, "\n"), "esc/f1: назад")
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "N/A"
	}
	return v
}
