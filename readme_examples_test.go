package docunit_test

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/tsawler/docunit"
	"github.com/tsawler/docunit/convert"
	"github.com/tsawler/docunit/docx"
	"github.com/tsawler/docunit/model"
)

// These examples verify the README code samples compile correctly.
// They are not meant to be run as actual tests since they require files.

func Example_convertToHTML() {
	html, warnings, err := docunit.Open("decision.docx").HTML()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(html)

	for _, w := range warnings {
		fmt.Println("Warning:", w.Message)
	}
}

func Example_withOptions() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	elements, warnings, err := docunit.Open("decision.docx").
		WithLogger(logger).    // Diagnostics at debug level
		ConvertLegacyImages(). // TIFF/BMP to PNG
		Elements()
	_ = elements
	_ = warnings
	_ = err
}

func Example_borderNumbers() {
	elements, _, err := docunit.Open("decision.docx").Elements()
	if err != nil {
		log.Fatal(err)
	}

	for _, el := range elements {
		if bn, ok := el.(*model.BorderNumber); ok {
			fmt.Println("Rn.", bn.Number())
		}
	}
}

func Example_lowLevel() {
	r, err := docx.Open("decision.docx")
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	res, err := convert.Convert(r.Body(), r.Styles(), r.Images())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(model.RenderHTML(res.Elements))
	for _, d := range res.Diagnostics {
		log.Println(d)
	}
}

func Example_formatWarnings() {
	_, warnings, err := docunit.Open("decision.docx").HTML()
	if err != nil {
		log.Fatal(err)
	}
	formatted := docunit.FormatWarnings(warnings)
	_ = formatted
}
