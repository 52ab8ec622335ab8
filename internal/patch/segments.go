// Package patch locates anchored regions in the site's HTML pages and
// replaces their interiors with freshly projected content.
//
// An anchor is a paired pair of sentinel comments:
//
//	<!-- AUTO-UPDATE: region-name -->
//	...replaceable interior...
//	<!-- END AUTO-UPDATE -->
//
// A document is parsed once into an ordered list of literal and region
// segments; substitution then happens by region name. Each region is bounded
// to the nearest closing sentinel, so adjacent anchors and unrelated markup
// are never disturbed.
package patch

import (
	"strings"

	"git.home.luguber.info/inful/sitesync/internal/errors"
)

const (
	openSentinelPrefix = "<!-- AUTO-UPDATE:"
	sentinelSuffix     = "-->"
	closeSentinel      = "<!-- END AUTO-UPDATE -->"
)

// segment is one slice of a parsed document. Literal segments carry raw
// text, sentinels included; region segments carry the current interior.
type segment struct {
	region string // empty for literal segments
	text   string
}

// Document is a page parsed into substitutable segments.
type Document struct {
	segments []segment
	dirty    bool
}

// ParseDocument splits content into literal and region segments.
//
// An opening sentinel without a matching closing sentinel is a markup error;
// the page owner has to repair the anchor before the region can be managed.
func ParseDocument(content string) (*Document, error) {
	doc := &Document{}
	rest := content

	for {
		openStart := strings.Index(rest, openSentinelPrefix)
		if openStart < 0 {
			break
		}

		nameStart := openStart + len(openSentinelPrefix)
		nameEnd := strings.Index(rest[nameStart:], sentinelSuffix)
		if nameEnd < 0 {
			return nil, errors.NewMarkupError("malformed opening sentinel", nil).
				WithContext("offset", len(content)-len(rest)+openStart)
		}
		region := strings.TrimSpace(rest[nameStart : nameStart+nameEnd])

		interiorStart := nameStart + nameEnd + len(sentinelSuffix)
		closeStart := strings.Index(rest[interiorStart:], closeSentinel)
		if closeStart < 0 {
			return nil, errors.NewMarkupError("anchor is missing its closing sentinel", nil).
				WithContext("region", region)
		}

		// The literal segment keeps everything through the opening sentinel;
		// the closing sentinel starts the next literal segment.
		doc.segments = append(doc.segments,
			segment{text: rest[:interiorStart]},
			segment{region: region, text: rest[interiorStart : interiorStart+closeStart]},
		)
		rest = rest[interiorStart+closeStart:]
	}

	if rest != "" {
		doc.segments = append(doc.segments, segment{text: rest})
	}
	return doc, nil
}

// Regions returns the region names present in the document, in order.
func (d *Document) Regions() []string {
	var names []string
	for _, seg := range d.segments {
		if seg.region != "" {
			names = append(names, seg.region)
		}
	}
	return names
}

// HasRegion reports whether the document contains the named region.
func (d *Document) HasRegion(name string) bool {
	for _, seg := range d.segments {
		if seg.region == name {
			return true
		}
	}
	return false
}

// SetRegion replaces the interior of every region with the given name.
// It returns true if the region was present; the document is marked dirty
// only when the interior actually changed.
func (d *Document) SetRegion(name, interior string) bool {
	found := false
	for i := range d.segments {
		if d.segments[i].region != name {
			continue
		}
		found = true
		if d.segments[i].text != interior {
			d.segments[i].text = interior
			d.dirty = true
		}
	}
	return found
}

// Dirty reports whether any SetRegion call changed an interior.
func (d *Document) Dirty() bool {
	return d.dirty
}

// Render reassembles the document. With no SetRegion calls the output is
// byte-identical to the parsed input.
func (d *Document) Render() string {
	var b strings.Builder
	for _, seg := range d.segments {
		b.WriteString(seg.text)
	}
	return b.String()
}
