package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate headings and labels.
func WithTranslator(t func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		if t != nil {
			f.translate = t
		}
	}
}

// WithVersion sets the version shown in the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Render Summary"))

	fmt.Fprintf(&b, "## %s\n\n", t("Stream"))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Item"), t("Value"))
	b.WriteString("|------|-------|\n")
	fmt.Fprintf(&b, "| %s | %s |\n", t("Output"), s.Stream.Path)
	fmt.Fprintf(&b, "| %s | YUV4MPEG2 4:4:4 |\n", t("Format"))
	fmt.Fprintf(&b, "| %s | %dx%d |\n", t("Frame Size"), s.Stream.Width, s.Stream.Height)
	fmt.Fprintf(&b, "| %s | %d fps |\n", t("Frame Rate"), s.Stream.FPS)
	b.WriteString("\n")

	o := s.Output
	fmt.Fprintf(&b, "## %s\n\n", t("Output"))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Item"), t("Value"))
	b.WriteString("|------|-------|\n")
	fmt.Fprintf(&b, "| %s | %d |\n", t("Frames"), o.FrameCount)
	fmt.Fprintf(&b, "| %s | %s |\n", t("Duration"), formatDuration(o.DurationMs))
	fmt.Fprintf(&b, "| %s | %s (%d bytes) |\n", t("File Size"), formatBytes(o.FileSize), o.FileSize)
	fmt.Fprintf(&b, "| %s | %d + %d x %d = %d bytes |\n", t("Expected Size"), o.HeaderSize, o.FrameCount, o.FrameSize, o.ExpectedSize)
	if o.Complete() {
		fmt.Fprintf(&b, "| %s | %s |\n", t("Check"), t("OK"))
	} else {
		fmt.Fprintf(&b, "| %s | %s (%+d bytes) |\n", t("Check"), t("Size mismatch"), o.FileSize-o.ExpectedSize)
	}
	b.WriteString("\n")

	if len(s.Segments) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", t("Segments"))
		fmt.Fprintf(&b, "| # | %s | %s | %s | %s |\n", t("Until"), t("Background"), t("Label"), t("Image"))
		b.WriteString("|---|-------|------------|-------|-------|\n")
		for i, seg := range s.Segments {
			fmt.Fprintf(&b, "| %d | %.2fs | %s | %s | %s |\n",
				i+1, seg.UntilSec, seg.Background, orDash(seg.Label), orDash(seg.Image))
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	footer := fmt.Sprintf("%s %s", t("Generated at"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if f.version != "" {
		footer += fmt.Sprintf(" (tinyrender %s)", f.version)
	}
	b.WriteString(footer + "\n")

	return b.String()
}

func formatDuration(ms int) string {
	return fmt.Sprintf("%.2f s", float64(ms)/1000)
}

func formatBytes(n int64) string {
	const unit = 1024
	switch {
	case n >= unit*unit*unit:
		return fmt.Sprintf("%.2f GB", float64(n)/(unit*unit*unit))
	case n >= unit*unit:
		return fmt.Sprintf("%.2f MB", float64(n)/(unit*unit))
	case n >= unit:
		return fmt.Sprintf("%.2f KB", float64(n)/unit)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
