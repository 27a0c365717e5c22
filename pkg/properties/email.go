package properties

import "github.com/notion-sdk/notion-go/internal/jsonmap"

type Email struct {
	metadata PropertyMetadata
	email    string
}

func NewEmail(email string) Email {
	return Email{metadata: NewPropertyMetadata("", TypeEmail), email: email}
}

func EmailFromMap(m map[string]any) (Email, error) {
	meta, err := metadataFromMap(m, TypeEmail)
	if err != nil {
		return Email{}, err
	}
	email, err := jsonmap.NullableString(m, string(TypeEmail))
	if err != nil {
		return Email{}, err
	}
	p := Email{metadata: meta}
	if email != nil {
		p.email = *email
	}
	return p, nil
}

func (p Email) ToMap() map[string]any {
	return withValue(p.metadata, nullIfEmpty(p.email))
}

func (p Email) Metadata() PropertyMetadata { return p.metadata }
func (p Email) Email() string              { return p.email }

func (p Email) ChangeEmail(email string) Email {
	p.email = email
	return p
}
