// Package render hands an encoded payload to the pixel VM, as a QR code
// that links to the VM endpoint with the payload in its query string.
package render

import (
	"io"
	"net/url"

	"github.com/skip2/go-qrcode"
)

const (
	DEFAULT_BASE_URL    = "http://localhost:5173/" // Local VM development server.
	DEFAULT_MIN_VERSION = 10                       // Smallest QR symbol version.
	DEFAULT_MODULE_SIZE = 10                       // Pixels per QR module.
	QUERY_KEY           = "code"                   // Query parameter carrying the payload.
)

// Renderer consumes a payload. It is only ever given complete payloads.
type Renderer interface {
	// Render publishes the payload.
	Render(payload string) (err error)
}

// URL embeds the payload as the `code` query parameter of the base URL.
func URL(base string, payload string) (link string, err error) {
	if len(base) == 0 {
		base = DEFAULT_BASE_URL
	}

	u, err := url.Parse(base)
	if err != nil || len(u.Scheme) == 0 || len(u.Host) == 0 {
		err = ErrBaseURL(base)
		return
	}

	query := u.Query()
	query.Set(QUERY_KEY, payload)
	u.RawQuery = query.Encode()

	link = u.String()
	return
}

// newCode builds the QR symbol of a payload link, growing past
// minVersion only when the link does not fit.
func newCode(base string, payload string, level qrcode.RecoveryLevel, minVersion int) (code *qrcode.QRCode, err error) {
	link, err := URL(base, payload)
	if err != nil {
		return
	}

	code, err = qrcode.New(link, level)
	if err != nil {
		return
	}

	if code.VersionNumber < minVersion {
		code, err = qrcode.NewWithForcedVersion(link, minVersion, level)
	}

	return
}

// QRCode renders the payload link as a PNG image.
type QRCode struct {
	BaseURL    string               // VM endpoint, DEFAULT_BASE_URL if empty.
	Level      qrcode.RecoveryLevel // Error correction level.
	MinVersion int                  // Smallest symbol version, DEFAULT_MIN_VERSION if zero.
	ModuleSize int                  // Pixels per module, DEFAULT_MODULE_SIZE if zero.
	Output     io.Writer            // PNG destination.
}

var _ Renderer = &QRCode{}

// Code returns the QR symbol for a payload.
func (qr *QRCode) Code(payload string) (code *qrcode.QRCode, err error) {
	minVersion := qr.MinVersion
	if minVersion == 0 {
		minVersion = DEFAULT_MIN_VERSION
	}

	code, err = newCode(qr.BaseURL, payload, qr.Level, minVersion)
	return
}

func (qr *QRCode) Render(payload string) (err error) {
	if qr.Output == nil {
		err = ErrOutputMissing
		return
	}

	code, err := qr.Code(payload)
	if err != nil {
		return
	}

	size := qr.ModuleSize
	if size == 0 {
		size = DEFAULT_MODULE_SIZE
	}

	// Negative sizes are pixels per module.
	err = code.Write(-size, qr.Output)
	return
}

// Terminal renders the payload link as a QR code of block characters.
type Terminal struct {
	BaseURL string               // VM endpoint, DEFAULT_BASE_URL if empty.
	Level   qrcode.RecoveryLevel // Error correction level.
	Invert  bool                 // Invert for dark on light terminals.
	Output  io.Writer            // Text destination.
}

var _ Renderer = &Terminal{}

func (term *Terminal) Render(payload string) (err error) {
	if term.Output == nil {
		err = ErrOutputMissing
		return
	}

	code, err := newCode(term.BaseURL, payload, term.Level, 1)
	if err != nil {
		return
	}

	_, err = io.WriteString(term.Output, code.ToSmallString(term.Invert))
	return
}

// Link writes the payload link as a single line of text.
type Link struct {
	BaseURL string    // VM endpoint, DEFAULT_BASE_URL if empty.
	Output  io.Writer // Text destination.
}

var _ Renderer = &Link{}

func (ln *Link) Render(payload string) (err error) {
	if ln.Output == nil {
		err = ErrOutputMissing
		return
	}

	link, err := URL(ln.BaseURL, payload)
	if err != nil {
		return
	}

	_, err = io.WriteString(ln.Output, link+"\n")
	return
}

// Multi renders to every renderer in order, stopping at the first error.
type Multi []Renderer

var _ Renderer = Multi{}

func (multi Multi) Render(payload string) (err error) {
	for _, r := range multi {
		err = r.Render(payload)
		if err != nil {
			return
		}
	}

	return
}
