package selection

import (
	"strings"

	"github.com/colonyops/dialpick/internal/core/catalog"
)

// PhoneField pairs free-text number input with the selected entry's dial
// code and reports the pair whenever either side changes. The number is not
// validated.
type PhoneField struct {
	dialCode string
	number   string
	onUpdate func(dialCode, number string)
}

// NewPhoneField creates a field reporting to onUpdate, which may be nil.
func NewPhoneField(onUpdate func(dialCode, number string)) *PhoneField {
	return &PhoneField{onUpdate: onUpdate}
}

// SetEntry adopts e's dial code without reporting. Use it for the initial
// default.
func (p *PhoneField) SetEntry(e catalog.Entry) {
	p.dialCode = e.DialCode
}

// SelectionChanged adopts e's dial code and reports. Wire it as a session's
// OnSelection.
func (p *PhoneField) SelectionChanged(e catalog.Entry) {
	p.dialCode = e.DialCode
	p.emit()
}

// SetNumber replaces the number text and reports.
func (p *PhoneField) SetNumber(number string) {
	p.number = number
	p.emit()
}

func (p *PhoneField) DialCode() string { return p.dialCode }

func (p *PhoneField) Number() string { return p.number }

// Combined joins dial code and number with a space, skipping an empty side.
func (p *PhoneField) Combined() string {
	return strings.TrimSpace(p.dialCode + " " + p.number)
}

func (p *PhoneField) emit() {
	if p.onUpdate != nil {
		p.onUpdate(p.dialCode, p.number)
	}
}
