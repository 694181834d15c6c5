// Package assetlink rewrites hosted asset URLs so that following them downloads
// the file instead of rendering it inline.
package assetlink

import (
	"net/url"
	"strings"

	"buildchem-be/internal/entity"
)

const (
	cloudinaryAutoFormat = "/f_auto,q_auto/"
	cloudinaryUpload     = "/upload/"
	cloudinaryAttachment = "/upload/fl_attachment/"

	downloadParam = "download"
)

// Rule rewrites one URL. Matches must be cheap; Rewrite is only called on a match.
type Rule interface {
	Matches(u *url.URL) bool
	Rewrite(raw string, u *url.URL) string
}

// CloudinaryRule forces the attachment flag on Cloudinary delivery URLs.
type CloudinaryRule struct{}

func (CloudinaryRule) Matches(u *url.URL) bool {
	return strings.Contains(strings.ToLower(u.Host), "cloudinary")
}

func (CloudinaryRule) Rewrite(raw string, _ *url.URL) string {
	if strings.Contains(raw, cloudinaryAttachment) {
		return raw
	}
	out := strings.Replace(raw, cloudinaryAutoFormat, "/", 1)
	return strings.Replace(out, cloudinaryUpload, cloudinaryAttachment, 1)
}

// QueryFlagRule appends download=1 for hosts that honour it (S3 style CDNs, Firebase storage, etc).
type QueryFlagRule struct {
	Hosts []string
}

func (r QueryFlagRule) Matches(u *url.URL) bool {
	host := strings.ToLower(u.Hostname())
	for _, h := range r.Hosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" {
			continue
		}
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

func (r QueryFlagRule) Rewrite(_ string, u *url.URL) string {
	q := u.Query()
	q.Set(downloadParam, "1")
	rewritten := *u
	rewritten.RawQuery = q.Encode()
	return rewritten.String()
}

type Normalizer struct {
	rules []Rule
}

// NewNormalizer returns a normalizer with the Cloudinary rule plus a query-flag
// rule for downloadHosts.
func NewNormalizer(downloadHosts []string) *Normalizer {
	rules := []Rule{CloudinaryRule{}}
	if len(downloadHosts) > 0 {
		rules = append(rules, QueryFlagRule{Hosts: downloadHosts})
	}
	return NewNormalizerWithRules(rules...)
}

func NewNormalizerWithRules(rules ...Rule) *Normalizer {
	return &Normalizer{rules: rules}
}

// ForceDownload returns the download form of raw. Empty, unparseable and
// unknown URLs come back unchanged.
func (n *Normalizer) ForceDownload(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	for _, rule := range n.rules {
		if rule.Matches(u) {
			return rule.Rewrite(raw, u)
		}
	}
	return raw
}

// NormalizeItems returns a new slice with every DocumentUrl rewritten.
// Items without a document are kept.
func (n *Normalizer) NormalizeItems(items []entity.SelectionItem) []entity.SelectionItem {
	out := entity.CloneSelectionItems(items)
	for i := range out {
		out[i].DocumentUrl = n.ForceDownload(out[i].DocumentUrl)
	}
	return out
}
