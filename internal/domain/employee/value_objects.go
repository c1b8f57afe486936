package employee

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidCPFLength   = errors.New("cpf must have 11 digits")
	ErrInvalidCPF         = errors.New("invalid cpf")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidPhoneLength = errors.New("phone number must have 10 or 11 digits")

	ErrEmptyStreet       = errors.New("street cannot be empty")
	ErrEmptyNumber       = errors.New("number cannot be empty")
	ErrEmptyNeighborhood = errors.New("neighborhood cannot be empty")
	ErrEmptyCity         = errors.New("city cannot be empty")
	ErrInvalidState      = errors.New("state must be a 2-letter code")
	ErrEmptyZipCode      = errors.New("zip code cannot be empty")
)

var (
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	nonDigitRegex = regexp.MustCompile(`[^\d]`)
)

// CPF is the Brazilian national taxpayer identifier, stored digits-only.
type CPF struct {
	value string
}

// NewCPF strips non-digit characters and validates the two check digits.
// Repeated-digit sequences are rejected even when the checksum arithmetic
// would pass.
func NewCPF(s string) (CPF, error) {
	digits := nonDigitRegex.ReplaceAllString(s, "")
	if len(digits) != 11 {
		return CPF{}, ErrInvalidCPFLength
	}
	if !validCPFDigits(digits) {
		return CPF{}, ErrInvalidCPF
	}
	return CPF{value: digits}, nil
}

func validCPFDigits(cpf string) bool {
	if strings.Count(cpf, cpf[:1]) == 11 {
		return false
	}

	// First check digit: weights 10..2 over digits[0..8], remainder mod 11;
	// expected 0 when remainder < 2, else 11-remainder.
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * (10 - i)
	}
	remainder := sum % 11
	first := 0
	if remainder >= 2 {
		first = 11 - remainder
	}
	if int(cpf[9]-'0') != first {
		return false
	}

	// Second check digit: weights 11..2 over digits[0..9], same remainder rule.
	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(cpf[i]-'0') * (11 - i)
	}
	remainder = sum % 11
	second := 0
	if remainder >= 2 {
		second = 11 - remainder
	}
	return int(cpf[10]-'0') == second
}

// Value returns the 11 normalized digits.
func (c CPF) Value() string {
	return c.value
}

// Formatted renders the CPF as XXX.XXX.XXX-XX.
func (c CPF) Formatted() string {
	return fmt.Sprintf("%s.%s.%s-%s", c.value[0:3], c.value[3:6], c.value[6:9], c.value[9:11])
}

func (c CPF) String() string {
	return c.Formatted()
}

type Email struct {
	value string
}

// NewEmail normalizes to trimmed lower case before validating.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) String() string {
	return e.value
}

// PhoneNumber is a Brazilian phone number, stored digits-only. Landlines have
// 10 digits, mobiles 11.
type PhoneNumber struct {
	value string
}

func NewPhoneNumber(s string) (PhoneNumber, error) {
	digits := nonDigitRegex.ReplaceAllString(s, "")
	if len(digits) != 10 && len(digits) != 11 {
		return PhoneNumber{}, ErrInvalidPhoneLength
	}
	return PhoneNumber{value: digits}, nil
}

func (p PhoneNumber) Value() string {
	return p.value
}

// Formatted renders (AA) NNNNN-NNNN for mobiles and (AA) NNNN-NNNN for
// landlines.
func (p PhoneNumber) Formatted() string {
	if len(p.value) == 11 {
		return fmt.Sprintf("(%s) %s-%s", p.value[0:2], p.value[2:7], p.value[7:11])
	}
	return fmt.Sprintf("(%s) %s-%s", p.value[0:2], p.value[2:6], p.value[6:10])
}

func (p PhoneNumber) String() string {
	return p.Formatted()
}

const defaultCountry = "Brazil"

type Address struct {
	street       string
	number       string
	complement   string
	neighborhood string
	city         string
	state        string
	zipCode      string
	country      string
}

type AddressParams struct {
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
	Country      string
}

// NewAddress trims every field and requires all but complement to be
// non-blank. Country defaults to Brazil when omitted; state is normalized to
// an upper-case 2-letter code.
func NewAddress(p AddressParams) (Address, error) {
	street := strings.TrimSpace(p.Street)
	if street == "" {
		return Address{}, ErrEmptyStreet
	}
	number := strings.TrimSpace(p.Number)
	if number == "" {
		return Address{}, ErrEmptyNumber
	}
	neighborhood := strings.TrimSpace(p.Neighborhood)
	if neighborhood == "" {
		return Address{}, ErrEmptyNeighborhood
	}
	city := strings.TrimSpace(p.City)
	if city == "" {
		return Address{}, ErrEmptyCity
	}
	state := strings.ToUpper(strings.TrimSpace(p.State))
	if len(state) != 2 {
		return Address{}, ErrInvalidState
	}
	zipCode := strings.TrimSpace(p.ZipCode)
	if zipCode == "" {
		return Address{}, ErrEmptyZipCode
	}
	country := strings.TrimSpace(p.Country)
	if country == "" {
		country = defaultCountry
	}

	return Address{
		street:       street,
		number:       number,
		complement:   strings.TrimSpace(p.Complement),
		neighborhood: neighborhood,
		city:         city,
		state:        state,
		zipCode:      zipCode,
		country:      country,
	}, nil
}

func (a Address) Street() string       { return a.street }
func (a Address) Number() string       { return a.number }
func (a Address) Complement() string   { return a.complement }
func (a Address) Neighborhood() string { return a.neighborhood }
func (a Address) City() string         { return a.city }
func (a Address) State() string        { return a.state }
func (a Address) ZipCode() string      { return a.zipCode }
func (a Address) Country() string      { return a.country }

func (a Address) String() string {
	complement := ""
	if a.complement != "" {
		complement = ", " + a.complement
	}
	return fmt.Sprintf("%s, %s%s, %s, %s-%s, %s, %s",
		a.street, a.number, complement, a.neighborhood, a.city, a.state, a.zipCode, a.country)
}
