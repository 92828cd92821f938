package domain

import "fmt"

// AcquisitionType describes how an item entered storage.
type AcquisitionType string

const (
	AcquisitionPurchasedFresh      AcquisitionType = "purchased_fresh"
	AcquisitionPurchasedFrozen     AcquisitionType = "purchased_frozen"
	AcquisitionPurchasedThenFrozen AcquisitionType = "purchased_then_frozen"
	AcquisitionHomemadeFrozen      AcquisitionType = "homemade_frozen"
	AcquisitionHomemadePreserved   AcquisitionType = "homemade_preserved"
)

func AcquisitionTypes() []AcquisitionType {
	return []AcquisitionType{
		AcquisitionPurchasedFresh,
		AcquisitionPurchasedFrozen,
		AcquisitionPurchasedThenFrozen,
		AcquisitionHomemadeFrozen,
		AcquisitionHomemadePreserved,
	}
}

func (t AcquisitionType) String() string {
	return string(t)
}

func (t AcquisitionType) Valid() bool {
	switch t {
	case AcquisitionPurchasedFresh,
		AcquisitionPurchasedFrozen,
		AcquisitionPurchasedThenFrozen,
		AcquisitionHomemadeFrozen,
		AcquisitionHomemadePreserved:
		return true
	}
	return false
}

func ParseAcquisitionType(s string) (AcquisitionType, error) {
	t := AcquisitionType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAcquisitionType, s)
	}
	return t, nil
}

// StorageProfile is the shelf-life regime an item follows.
// StorageProfileNone means the printed best-before date is used as is.
type StorageProfile string

const (
	StorageProfileNone    StorageProfile = ""
	StorageProfileFrozen  StorageProfile = "frozen"
	StorageProfileAmbient StorageProfile = "ambient"
)

func (p StorageProfile) String() string {
	if p == StorageProfileNone {
		return "none"
	}
	return string(p)
}

func (p StorageProfile) IsNone() bool {
	return p == StorageProfileNone
}

// ParseStorageProfile accepts only profiles that can carry a shelf-life window.
func ParseStorageProfile(s string) (StorageProfile, error) {
	switch p := StorageProfile(s); p {
	case StorageProfileFrozen, StorageProfileAmbient:
		return p, nil
	}
	return StorageProfileNone, fmt.Errorf("%w: %q", ErrUnknownStorageProfile, s)
}
