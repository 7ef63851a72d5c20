package render

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// proofImagePixels is the edge length of the rendered QR symbol. 256 px
// scales down cleanly to the 25 mm box it occupies on the page.
const proofImagePixels = 256

// ProofURL constructs the publicly resolvable retrieval URL for a
// document's structured e-invoice counterpart. A verifier scanning the
// printed symbol fetches the XML artifact from this address.
func ProofURL(baseURL, proofID string) (string, error) {
	id := strings.TrimSpace(proofID)
	if id == "" {
		return "", ErrMissingProofID
	}
	return fmt.Sprintf("%s/api/einvoices/%s/xml", strings.TrimRight(baseURL, "/"), id), nil
}

// EncodeProofImage encodes a retrieval URL into a scannable QR symbol and
// returns it as PNG bytes.
func EncodeProofImage(url string) ([]byte, error) {
	code, err := qr.Encode(url, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("encoding proof QR: %w", err)
	}
	scaled, err := barcode.Scale(code, proofImagePixels, proofImagePixels)
	if err != nil {
		return nil, fmt.Errorf("scaling proof QR: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("rendering proof QR: %w", err)
	}
	return buf.Bytes(), nil
}
