package convert

import (
	"fmt"

	"github.com/beevik/etree"
)

// Object is one entry of a keyed archive's $objects array. Non-string
// entries keep their position but carry no text; the extraction heuristic
// needs the positions intact.
type Object struct {
	Text     string
	IsString bool
}

// fontMarker precedes the note body in NSKeyedArchiver output from the
// Notes export format this tool understands.
const fontMarker = "AppleSDGothicNeo"

// parseObjects pulls the $objects array out of an XML plist document.
func parseObjects(data []byte) ([]Object, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("convert: parse plist xml: %w", err)
	}
	root := doc.SelectElement("plist")
	if root == nil {
		return nil, fmt.Errorf("convert: no <plist> root element")
	}
	dict := root.SelectElement("dict")
	if dict == nil {
		return nil, fmt.Errorf("convert: no top-level <dict>")
	}

	children := dict.ChildElements()
	for i := 0; i+1 < len(children); i += 2 {
		if children[i].Tag != "key" || children[i].Text() != "$objects" {
			continue
		}
		arr := children[i+1]
		if arr.Tag != "array" {
			return nil, fmt.Errorf("convert: $objects is a <%s>, want <array>", arr.Tag)
		}
		objs := make([]Object, 0, len(arr.ChildElements()))
		for _, el := range arr.ChildElements() {
			objs = append(objs, Object{Text: el.Text(), IsString: el.Tag == "string"})
		}
		return objs, nil
	}
	return nil, fmt.Errorf("convert: plist has no $objects array")
}

// ExtractNote locates the note body within the archive objects: the first
// string entries after the font marker, preferring the longer of two
// adjacent candidates. Returns false when no body is present.
func ExtractNote(objs []Object) (string, bool) {
	start := -1
	for i, o := range objs {
		if o.IsString && o.Text == fontMarker {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return "", false
	}
	for i := start; i < len(objs); i++ {
		if !objs[i].IsString {
			continue
		}
		if i+1 >= len(objs) {
			return objs[i].Text, true
		}
		if len(objs[i].Text) >= len(objs[i+1].Text) {
			return objs[i].Text, true
		}
		return objs[i+1].Text, true
	}
	return "", false
}
