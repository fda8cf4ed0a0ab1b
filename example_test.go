package simplepdf_test

import (
	"bytes"
	"context"
	"fmt"
	"os"

	simplepdf "github.com/mrwadams/simple-pdf-generator"
)

// Example demonstrates basic Markdown to PDF conversion.
func Example() {
	svc := simplepdf.New()

	result, err := svc.Convert(context.Background(), simplepdf.Input{
		Text:     "# Hello World\n\nThis is a test.\n\n- first\n- second",
		Markdown: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.Remove(result.Path)

	if bytes.HasPrefix(result.PDF, []byte("%PDF-")) {
		fmt.Println("PDF generated successfully")
	}
	// Output: PDF generated successfully
}

// Example_plainText demonstrates converting plain text without
// structure extraction.
func Example_plainText() {
	svc := simplepdf.New(simplepdf.WithPageSettings(&simplepdf.PageSettings{
		Size:        simplepdf.PageSizeLetter,
		Orientation: simplepdf.OrientationPortrait,
		Margin:      0.5,
	}))

	result, err := svc.Convert(context.Background(), simplepdf.Input{
		Text: "Plain notes, no markdown interpretation.",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.Remove(result.Path)

	fmt.Println("wrote", len(result.PDF) > 0)
	// Output: wrote true
}
