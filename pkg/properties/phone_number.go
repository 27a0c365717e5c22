package properties

import "github.com/notion-sdk/notion-go/internal/jsonmap"

// PhoneNumber holds a phone number as typed by the user; it is not validated.
type PhoneNumber struct {
	metadata PropertyMetadata
	phone    string
}

func NewPhoneNumber(phone string) PhoneNumber {
	return PhoneNumber{metadata: NewPropertyMetadata("", TypePhoneNumber), phone: phone}
}

func PhoneNumberFromMap(m map[string]any) (PhoneNumber, error) {
	meta, err := metadataFromMap(m, TypePhoneNumber)
	if err != nil {
		return PhoneNumber{}, err
	}
	phone, err := jsonmap.NullableString(m, string(TypePhoneNumber))
	if err != nil {
		return PhoneNumber{}, err
	}
	p := PhoneNumber{metadata: meta}
	if phone != nil {
		p.phone = *phone
	}
	return p, nil
}

func (p PhoneNumber) ToMap() map[string]any {
	return withValue(p.metadata, nullIfEmpty(p.phone))
}

func (p PhoneNumber) Metadata() PropertyMetadata { return p.metadata }
func (p PhoneNumber) Phone() string              { return p.phone }

func (p PhoneNumber) ChangePhone(phone string) PhoneNumber {
	p.phone = phone
	return p
}
