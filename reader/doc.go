// Package reader decodes PDF documents into positioned text items.
//
// Decoding is delegated to github.com/ledongthuc/pdf, which reports one
// [pdf.Text] per glyph. [MergeGlyphs] rebuilds text runs from those glyphs:
// glyphs that share a baseline and sit closer than a font-relative gap are
// joined, a wider gap becomes a space, and a gap wider than a column gutter
// starts a new run.
//
// # Decoding
//
//	doc, err := reader.Decode(data)
//	if err != nil {
//	    return err
//	}
//	for n := 1; n <= doc.NumPages(); n++ {
//	    page, err := doc.Page(n)
//	    ...
//	}
//
// Page numbers are 1-based. Item coordinates are in PDF user space with the
// origin at the bottom-left; X and Y are rounded, RawX and RawY are not.
package reader
