package output

import (
	"fmt"

	"github.com/hushbook/hushbook/internal/model"
)

// CLIFormatter provides CLI-specific formatting with the active theme.
type CLIFormatter struct {
	*Formatter
	styles Styles
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{
		Formatter: f,
		styles:    NewStyles(f.Palette()),
	}
}

// Title prints a section title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(c.styles.Title.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(c.styles.Success.Render("✓ " + text))
	} else {
		c.Println(text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(c.styles.Error.Render("✗ " + text))
	} else {
		c.Println(text)
	}
}

// Muted prints secondary information.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(c.styles.Muted.Render(text))
	} else {
		c.Println(text)
	}
}

// PrintContact prints one contact row.
func (c *CLIFormatter) PrintContact(contact *model.Contact, keepLabel string) {
	marker := ""
	if contact.KeepAfterWipe {
		marker = " [" + keepLabel + "]"
	}

	if c.IsColorEnabled() {
		c.Printf("%s  %s%s\n",
			c.styles.Name.Render(contact.Name),
			c.styles.Detail.Render(contact.Contact),
			c.styles.Muted.Render(marker))
		c.Printf("  %s\n", c.styles.Muted.Render(contact.ID))
		return
	}

	c.Printf("%s  %s%s\n", contact.Name, contact.Contact, marker)
	c.Printf("  %s\n", contact.ID)
}

// PrintPlace prints one place row.
func (c *CLIFormatter) PrintPlace(place *model.Place, noCoordsLabel string) {
	position := noCoordsLabel
	if place.HasCoordinates() {
		position = fmt.Sprintf("%.6f, %.6f", *place.Latitude, *place.Longitude)
	}

	if c.IsColorEnabled() {
		c.Printf("%s  %s\n",
			c.styles.Name.Render(place.Name),
			c.styles.Detail.Render(place.Address))
		c.Printf("  %s\n", c.styles.Muted.Render(position+"  "+place.ID))
		return
	}

	c.Printf("%s  %s\n", place.Name, place.Address)
	c.Printf("  %s  %s\n", position, place.ID)
}
