package client

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/term"

	"ministry/internal/app/client/table"
	"ministry/internal/domain/gallery"
	"ministry/internal/domain/material"
)

const defaultTerminalWidth = 80

var (
	upToDateBadge    = color.New(color.FgGreen, color.Bold).SprintFunc()
	notUpToDateBadge = color.New(color.FgYellow, color.Bold).SprintFunc()
	galleryTitle     = color.New(color.FgCyan, color.Bold).SprintFunc()
	faint            = color.New(color.Faint).SprintFunc()
)

// StatusBadge renders a status with dashes replaced by spaces.
func StatusBadge(s material.Status) string {
	text := s.DisplayName()
	switch s {
	case material.StatusUpToDate:
		return upToDateBadge(text)
	case material.StatusNotUpToDate:
		return notUpToDateBadge(text)
	default:
		return text
	}
}

// MaterialColumns are the columns of the service materials table.
func MaterialColumns(now func() time.Time) []table.Column[material.Material] {
	return []table.Column[material.Material]{
		{
			Key:    "id",
			Header: "ID",
			Value:  func(m material.Material) (string, bool) { return strconv.Itoa(m.ID), true },
		},
		{
			Key:    "name",
			Header: "NAME",
			Value:  func(m material.Material) (string, bool) { return m.Name, true },
			Cell:   func(m material.Material) string { return truncate(m.Name, 32) },
		},
		{
			Key:    "category",
			Header: "CATEGORY",
			Value:  func(m material.Material) (string, bool) { return m.Category, true },
		},
		{
			Key:    "status",
			Header: "STATUS",
			Value:  func(m material.Material) (string, bool) { return m.Status.String(), true },
			Cell:   func(m material.Material) string { return StatusBadge(m.Status) },
		},
		{
			Key:    "fileName",
			Header: "FILE",
			Value:  optional(func(m material.Material) *string { return m.FileName }),
			Cell: func(m material.Material) string {
				if m.FileName == nil {
					return "-"
				}
				return truncate(*m.FileName, 28)
			},
		},
		{
			Key:    "fileSize",
			Header: "SIZE",
			Value: func(m material.Material) (string, bool) {
				if m.FileSize == nil {
					return "", false
				}
				return strconv.FormatInt(*m.FileSize, 10), true
			},
			Cell: func(m material.Material) string {
				if m.FileSize == nil || *m.FileSize == 0 {
					return "-"
				}
				return humanize.Bytes(uint64(*m.FileSize))
			},
		},
		{
			Key:    "editor",
			Header: "EDITOR",
			Value:  func(m material.Material) (string, bool) { return m.Editor.Name, m.Editor.Name != "" },
		},
		{
			Key:    "updatedAt",
			Header: "UPDATED",
			Value: func(m material.Material) (string, bool) {
				return m.UpdatedAt.UTC().Format(time.RFC3339Nano), !m.UpdatedAt.IsZero()
			},
			Cell: func(m material.Material) string { return humanize.RelTime(m.UpdatedAt, now(), "ago", "from now") },
		},
	}
}

func optional[T any](get func(T) *string) func(T) (string, bool) {
	return func(row T) (string, bool) {
		v := get(row)
		if v == nil {
			return "", false
		}
		return *v, true
	}
}

// RenderTable writes the current page of tbl with a sort marker on the
// sorted column and the pager footer when there is more than one page.
func RenderTable[T any](w io.Writer, tbl *table.Table[T]) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	sortKey, dir := tbl.Sort()
	cols := tbl.Columns()
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
		if c.Key != "" && c.Key == sortKey {
			headers[i] += sortMarker(dir)
		}
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t")+"\t")

	rows := tbl.Rows()
	if len(rows) == 0 {
		fmt.Fprintln(tw, "No results found")
	}
	cells := make([]string, len(cols))
	for _, row := range rows {
		for i, c := range cols {
			cells[i] = c.Render(row)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if tbl.TotalPages() > 1 {
		_, err := fmt.Fprintf(w, "\n%s  (page %d of %d)\n", tbl.RangeLabel(), tbl.Page(), tbl.TotalPages())
		return err
	}
	return nil
}

func sortMarker(dir table.Direction) string {
	if dir == table.Desc {
		return " ▼"
	}
	return " ▲"
}

// RenderMaterial writes every field of one material.
func RenderMaterial(w io.Writer, m material.Material) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "ID:\t%d\n", m.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", m.Name)
	if m.Description != nil {
		fmt.Fprintf(tw, "Description:\t%s\n", *m.Description)
	}
	fmt.Fprintf(tw, "Category:\t%s\n", m.Category)
	fmt.Fprintf(tw, "Icon:\t%s\n", m.Icon)
	fmt.Fprintf(tw, "Status:\t%s\n", StatusBadge(m.Status))
	if m.FileName != nil {
		fmt.Fprintf(tw, "File:\t%s\n", *m.FileName)
	}
	if m.FileSize != nil && *m.FileSize > 0 {
		fmt.Fprintf(tw, "Size:\t%s\n", humanize.Bytes(uint64(*m.FileSize)))
	}
	if m.MimeType != nil {
		fmt.Fprintf(tw, "Type:\t%s\n", *m.MimeType)
	}
	fmt.Fprintf(tw, "Editor:\t%s\n", m.Editor.Name)
	fmt.Fprintf(tw, "Created:\t%s\n", m.CreatedAt.Format(time.RFC1123))
	fmt.Fprintf(tw, "Updated:\t%s (%s)\n", m.UpdatedAt.Format(time.RFC1123), humanize.Time(m.UpdatedAt))

	return tw.Flush()
}

// GalleryColumns picks 1, 2 or 3 columns for the terminal width.
func GalleryColumns(width int) int {
	switch {
	case width >= 120:
		return 3
	case width >= 80:
		return 2
	default:
		return 1
	}
}

// RenderGallery lays items out in a grid that fits width.
func RenderGallery(w io.Writer, items []gallery.Item, width int) error {
	if width <= 0 {
		width = defaultTerminalWidth
	}
	cols := GalleryColumns(width)
	const gap = 4
	cellWidth := (width - gap*(cols-1)) / cols

	for start := 0; start < len(items); start += cols {
		end := min(start+cols, len(items))

		blocks := make([][]string, 0, cols)
		height := 0
		for _, item := range items[start:end] {
			block := galleryCell(item, cellWidth)
			height = max(height, len(block))
			blocks = append(blocks, block)
		}

		for line := 0; line < height; line++ {
			var sb strings.Builder
			for i, block := range blocks {
				text := ""
				if line < len(block) {
					text = block[line]
				}
				sb.WriteString(text)
				if i < len(blocks)-1 {
					sb.WriteString(strings.Repeat(" ", cellWidth-visibleLen(text)+gap))
				}
			}
			if _, err := fmt.Fprintln(w, strings.TrimRight(sb.String(), " ")); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func galleryCell(item gallery.Item, width int) []string {
	lines := []string{galleryTitle(truncate(item.Title, width))}
	lines = append(lines, faint(truncate(item.Category, width)))
	lines = append(lines, wrap(item.Description, width)...)
	lines = append(lines, truncate(item.ImageURL, width))
	return lines
}

// visibleLen is the rune length of s without ANSI escape sequences.
func visibleLen(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			n++
		}
	}
	return n
}

func wrap(s string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length || length < 4 {
		return s
	}
	return string(r[:length-3]) + "..."
}

// TerminalWidth returns the width of f when it is a terminal.
func TerminalWidth(f *os.File) int {
	if !term.IsTerminal(int(f.Fd())) {
		return defaultTerminalWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}
