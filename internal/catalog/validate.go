package catalog

import (
	"errors"
	"fmt"
)

// Validate checks the invariants every deck must hold and reports all
// violations at once.
func (d *Deck) Validate() error {
	if len(d.Slides) == 0 {
		return errors.New("deck has no slides")
	}

	var errs []error
	seen := make(map[int]int, len(d.Slides))
	for i, s := range d.Slides {
		where := fmt.Sprintf("slide %d", i+1)
		if s.ID <= 0 {
			errs = append(errs, fmt.Errorf("%s: id must be positive, got %d", where, s.ID))
		} else if prev, dup := seen[s.ID]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate id %d (also slide %d)", where, s.ID, prev+1))
		} else {
			seen[s.ID] = i
		}
		if s.Title == "" {
			errs = append(errs, fmt.Errorf("%s: title is required", where))
		}
		switch s.MediaType {
		case MediaImage, MediaVideo:
		default:
			errs = append(errs, fmt.Errorf("%s: unknown media type %q", where, s.MediaType))
		}
		if s.MediaSrc == "" {
			errs = append(errs, fmt.Errorf("%s: media source is required", where))
		}
		switch s.EffectiveLayout() {
		case LayoutStandard, LayoutBranded, LayoutDimmed:
		default:
			errs = append(errs, fmt.Errorf("%s: unknown layout %q", where, s.Layout))
		}
	}
	return errors.Join(errs...)
}
