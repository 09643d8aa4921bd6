package gpx

import (
	"errors"
	"testing"
)

func TestRead(t *testing.T) {
	doc, err := ReadString(`<gpx version="1.1">
		<wpt lat="2.5" lon="1.5"><name>Lake</name></wpt>
		<metadata><author>someone</author></metadata>
	</gpx>`)
	if err != nil {
		t.Fatal(err)
	}

	root := doc.Root
	if root.Name != "gpx" {
		t.Errorf("root is %q, expected gpx", root.Name)
	}
	if root.Attr("version") != "1.1" {
		t.Errorf("version attr is %q", root.Attr("version"))
	}
	if len(root.Children) != 2 {
		t.Fatalf("root has %d children, expected 2", len(root.Children))
	}

	wpt := root.Child("wpt")
	if wpt == nil {
		t.Fatal("no wpt child")
	}
	if wpt.Attr("lat") != "2.5" || wpt.Attr("lon") != "1.5" {
		t.Errorf("bad wpt attrs: %v", wpt.Attrs)
	}
	if wpt.Attr("missing") != "" {
		t.Errorf("missing attr is %q, expected empty", wpt.Attr("missing"))
	}
	if name := wpt.Child("name"); name == nil || name.Text != "Lake" {
		t.Errorf("bad name child: %v", name)
	}
}

func TestReadNamespacedNames(t *testing.T) {
	doc, err := ReadString(`<gpx xmlns="http://www.topografix.com/GPX/1/1" xmlns:gpxx="urn:x">
		<wpt lat="1" lon="2"><extensions><gpxx:color>red</gpxx:color></extensions></wpt>
	</gpx>`)
	if err != nil {
		t.Fatal(err)
	}
	ext := doc.Root.Child("wpt").Child("extensions")
	if ext == nil {
		t.Fatal("no extensions child")
	}
	if len(ext.Children) != 1 || ext.Children[0].Name != "color" {
		t.Errorf("expected local name color, got %v", ext.Children)
	}
}

func TestFind(t *testing.T) {
	doc, err := ReadString(`<gpx>
		<trk>
			<trkseg><trkpt lat="1" lon="1"><ele>10</ele></trkpt></trkseg>
			<trkseg><trkpt lat="2" lon="2"><ele>20</ele></trkpt></trkseg>
		</trk>
	</gpx>`)
	if err != nil {
		t.Fatal(err)
	}
	trk := doc.Root.Child("trk")

	if ele := trk.Find("ele"); ele == nil || ele.Text != "10" {
		t.Errorf("first descendant ele is %v, expected 10", ele)
	}
	pts := trk.FindAll("trkpt")
	if len(pts) != 2 {
		t.Fatalf("found %d trkpt, expected 2", len(pts))
	}
	if pts[0].Attr("lat") != "1" || pts[1].Attr("lat") != "2" {
		t.Errorf("trkpt out of document order: %v", pts)
	}
}

func TestReadMalformed(t *testing.T) {
	cases := []string{
		``,
		`   `,
		`<gpx>`,
		`<gpx><wpt></gpx>`,
		`<gpx></gpx><gpx></gpx>`,
		`not xml at all`,
		`<gpx/>trailing garbage`,
		`leading garbage<gpx/>`,
	}
	for _, in := range cases {
		doc, err := ReadString(in)
		if err == nil {
			t.Errorf("no error for %q", in)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("error for %q is %T, expected *ParseError", in, err)
		}
		if len(perr.Messages) == 0 || perr.Error() == "" {
			t.Errorf("empty ParseError for %q", in)
		}
		if doc != nil {
			t.Errorf("got partial document for %q", in)
		}
	}
}

func TestReadSurroundingWhitespace(t *testing.T) {
	// Whitespace around the root is legal, unlike other text.
	doc, err := ReadString("\n\t<gpx><wpt lat=\"1\" lon=\"2\"/></gpx>\n\n")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Root.Name != "gpx" || len(doc.Root.Children) != 1 {
		t.Errorf("unexpected document: %v", doc.Root)
	}
}

func TestReadTextVerbatim(t *testing.T) {
	doc, err := ReadString(`<gpx><wpt><name> Lake </name></wpt></gpx>`)
	if err != nil {
		t.Fatal(err)
	}
	// Text is kept verbatim, no trimming.
	if got := doc.Root.Child("wpt").Child("name").Text; got != " Lake " {
		t.Errorf("text is %q", got)
	}
}
