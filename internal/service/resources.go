package service

import (
	"errors"
	"strconv"
	"strings"

	"github.com/motorent/internal/model"
)

// Presence-only validation errors. Anything richer (type correctness,
// uniqueness) is delegated to the content store and surfaced verbatim.
var (
	ErrVehicleNameMissing  = errors.New("vehicle name is required")
	ErrVehicleImageMissing = errors.New("vehicle image is required")
	ErrSlideTitleMissing   = errors.New("slide title and image are required")
	ErrGalleryImageMissing = errors.New("gallery image is required")
	ErrFeatureTitleMissing = errors.New("feature title is required")
	ErrPolicyTitleMissing  = errors.New("policy title is required")
	ErrFieldLabelMissing   = errors.New("field label is required")
)

// VehicleResource describes the fleet collection. The slug is derived from
// the name on create only; the update path always reuses the remembered key.
func VehicleResource() ListResource[model.Vehicle] {
	return ListResource[model.Vehicle]{
		Path: model.PathVehicles,
		Key:  func(v model.Vehicle) string { return v.Slug },
		Validate: func(v model.Vehicle) error {
			if strings.TrimSpace(v.Name) == "" {
				return ErrVehicleNameMissing
			}
			if strings.TrimSpace(v.Image) == "" {
				return ErrVehicleImageMissing
			}
			return nil
		},
		OnCreate: func(v *model.Vehicle) {
			v.Slug = model.Slugify(v.Name)
			if len(v.RentalCharges) == 0 {
				v.RentalCharges = model.DefaultRateTiers()
			}
		},
	}
}

// SlideResource describes the hero slide collection.
func SlideResource() ListResource[model.HeroSlide] {
	return ListResource[model.HeroSlide]{
		Path: model.PathHeroSlides,
		Key:  func(s model.HeroSlide) string { return strconv.Itoa(s.ID) },
		Validate: func(s model.HeroSlide) error {
			if strings.TrimSpace(s.Title) == "" || strings.TrimSpace(s.ImageURL) == "" {
				return ErrSlideTitleMissing
			}
			return nil
		},
	}
}

// GalleryResource describes the gallery photo collection.
func GalleryResource() ListResource[model.GalleryImage] {
	return ListResource[model.GalleryImage]{
		Path: model.PathGallery,
		Key:  func(g model.GalleryImage) string { return strconv.Itoa(g.ID) },
		Validate: func(g model.GalleryImage) error {
			if strings.TrimSpace(g.Image) == "" {
				return ErrGalleryImageMissing
			}
			return nil
		},
	}
}

// FeatureResource describes the feature card collection.
func FeatureResource() ListResource[model.Feature] {
	return ListResource[model.Feature]{
		Path: model.PathFeatures,
		Key:  func(f model.Feature) string { return strconv.Itoa(f.ID) },
		Validate: func(f model.Feature) error {
			if strings.TrimSpace(f.Title) == "" {
				return ErrFeatureTitleMissing
			}
			return nil
		},
	}
}

// PolicyResource describes the rental-policy card collection.
func PolicyResource() ListResource[model.Policy] {
	return ListResource[model.Policy]{
		Path: model.PathPolicies,
		Key:  func(p model.Policy) string { return strconv.Itoa(p.ID) },
		Validate: func(p model.Policy) error {
			if strings.TrimSpace(p.Title) == "" {
				return ErrPolicyTitleMissing
			}
			return nil
		},
	}
}

// ContactFieldResource describes the dynamic contact-form field collection.
func ContactFieldResource() ListResource[model.ContactField] {
	return ListResource[model.ContactField]{
		Path: model.PathContactFields,
		Key:  func(f model.ContactField) string { return strconv.Itoa(f.ID) },
		Validate: func(f model.ContactField) error {
			if strings.TrimSpace(f.Label) == "" {
				return ErrFieldLabelMissing
			}
			return nil
		},
	}
}
