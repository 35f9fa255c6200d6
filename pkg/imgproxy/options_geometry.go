// SPDX-License-Identifier: MPL-2.0

package imgproxy

// WithWidth sets the target width in pixels; 0 keeps the aspect ratio.
func (s *OptionSet) WithWidth(w int) error {
	if err := checkAtLeast(CodeWidth, "width", w, 0); err != nil {
		return err
	}
	s.setInt(CodeWidth, w)
	return nil
}

// WithoutWidth removes the width.
func (s *OptionSet) WithoutWidth() { s.Unset(CodeWidth) }

// Width returns the width, if set.
func (s *OptionSet) Width() (int, bool) { return s.intValue(CodeWidth) }

// WithHeight sets the target height in pixels; 0 keeps the aspect ratio.
func (s *OptionSet) WithHeight(h int) error {
	if err := checkAtLeast(CodeHeight, "height", h, 0); err != nil {
		return err
	}
	s.setInt(CodeHeight, h)
	return nil
}

// WithoutHeight removes the height.
func (s *OptionSet) WithoutHeight() { s.Unset(CodeHeight) }

// Height returns the height, if set.
func (s *OptionSet) Height() (int, bool) { return s.intValue(CodeHeight) }

// WithResizingType sets how the image is fitted into width x height.
func (s *OptionSet) WithResizingType(t ResizingType) error {
	if err := t.Validate(); err != nil {
		return wrapOptionError(CodeResizingType, err)
	}
	s.setString(CodeResizingType, string(t))
	return nil
}

// WithoutResizingType removes the resizing type.
func (s *OptionSet) WithoutResizingType() { s.Unset(CodeResizingType) }

// ResizingType returns the resizing type, if set.
func (s *OptionSet) ResizingType() (ResizingType, bool) {
	v, ok := s.stringValue(CodeResizingType)
	return ResizingType(v), ok
}

// WithResizingAlgorithm sets the resampling filter.
func (s *OptionSet) WithResizingAlgorithm(a ResizingAlgorithm) error {
	if err := a.Validate(); err != nil {
		return wrapOptionError(CodeResizingAlgorithm, err)
	}
	s.setString(CodeResizingAlgorithm, string(a))
	return nil
}

// WithoutResizingAlgorithm removes the resizing algorithm.
func (s *OptionSet) WithoutResizingAlgorithm() { s.Unset(CodeResizingAlgorithm) }

// ResizingAlgorithm returns the resizing algorithm, if set.
func (s *OptionSet) ResizingAlgorithm() (ResizingAlgorithm, bool) {
	v, ok := s.stringValue(CodeResizingAlgorithm)
	return ResizingAlgorithm(v), ok
}

// WithDpr sets the device pixel ratio multiplier.
func (s *OptionSet) WithDpr(dpr int) error {
	if err := checkPositive(CodeDpr, "dpr", dpr); err != nil {
		return err
	}
	s.setInt(CodeDpr, dpr)
	return nil
}

// WithoutDpr removes the dpr.
func (s *OptionSet) WithoutDpr() { s.Unset(CodeDpr) }

// Dpr returns the dpr, if set.
func (s *OptionSet) Dpr() (int, bool) { return s.intValue(CodeDpr) }

// WithEnlarge allows the result to be larger than the source.
func (s *OptionSet) WithEnlarge() { s.setFlag(CodeEnlarge) }

// WithoutEnlarge removes the enlarge flag.
func (s *OptionSet) WithoutEnlarge() { s.Unset(CodeEnlarge) }

// Enlarge reports whether the enlarge flag is set.
func (s *OptionSet) Enlarge() bool { return s.Has(CodeEnlarge) }

// WithExtend pads the result up to the requested size, optionally anchored
// at a gravity. Smart gravity is rejected.
func (s *OptionSet) WithExtend(gravity ...Gravity) error {
	g, hasGravity, err := optionalGravity(CodeExtend, gravity)
	if err != nil {
		return err
	}
	if hasGravity && g.Type() == GravitySmart {
		return optionError(CodeExtend, "smart gravity is not supported")
	}
	s.set(ExtendOption{gravity: g, hasGravity: hasGravity})
	return nil
}

// WithoutExtend removes the extend option.
func (s *OptionSet) WithoutExtend() { s.Unset(CodeExtend) }

// Extend returns the extend option, if set.
func (s *OptionSet) Extend() (ExtendOption, bool) { return lookup[ExtendOption](s, CodeExtend) }

// WithGravity sets the gravity. See NewGravity for the coordinate rules.
func (s *OptionSet) WithGravity(t GravityType, coords ...float64) error {
	g, err := NewGravity(t, coords...)
	if err != nil {
		return wrapOptionError(CodeGravity, err)
	}
	s.set(GravityOption{gravity: g})
	return nil
}

// WithoutGravity removes the gravity.
func (s *OptionSet) WithoutGravity() { s.Unset(CodeGravity) }

// Gravity returns the gravity, if set.
func (s *OptionSet) Gravity() (Gravity, bool) {
	o, ok := lookup[GravityOption](s, CodeGravity)
	return o.gravity, ok
}

// WithCrop crops the source before resizing. Sizes below 1 are relative to
// the source dimensions; 0 keeps the full dimension.
func (s *OptionSet) WithCrop(width, height float64, gravity ...Gravity) error {
	if err := checkAtLeast(CodeCrop, "width", width, 0); err != nil {
		return err
	}
	if err := checkAtLeast(CodeCrop, "height", height, 0); err != nil {
		return err
	}
	g, hasGravity, err := optionalGravity(CodeCrop, gravity)
	if err != nil {
		return err
	}
	s.set(CropOption{width: width, height: height, gravity: g, hasGravity: hasGravity})
	return nil
}

// WithoutCrop removes the crop.
func (s *OptionSet) WithoutCrop() { s.Unset(CodeCrop) }

// Crop returns the crop option, if set.
func (s *OptionSet) Crop() (CropOption, bool) { return lookup[CropOption](s, CodeCrop) }

// WithPadding adds padding in CSS order. At least one side must be non-zero.
func (s *OptionSet) WithPadding(top, right, bottom, left int) error {
	sides := []struct {
		name  string
		value int
	}{{"top", top}, {"right", right}, {"bottom", bottom}, {"left", left}}
	for _, side := range sides {
		if err := checkAtLeast(CodePadding, side.name+" padding", side.value, 0); err != nil {
			return err
		}
	}
	if top == 0 && right == 0 && bottom == 0 && left == 0 {
		return optionError(CodePadding, "at least one padding must be greater than 0")
	}
	s.set(PaddingOption{top: top, right: right, bottom: bottom, left: left})
	return nil
}

// WithoutPadding removes the padding.
func (s *OptionSet) WithoutPadding() { s.Unset(CodePadding) }

// Padding returns the padding, if set.
func (s *OptionSet) Padding() (PaddingOption, bool) { return lookup[PaddingOption](s, CodePadding) }

// WithTrim removes borders similar to color within threshold. An empty color
// lets the service detect it from the top-left pixel.
func (s *OptionSet) WithTrim(threshold float64, color string, equalHorizontal, equalVertical bool) error {
	if err := checkAtLeast(CodeTrim, "threshold", threshold, 0); err != nil {
		return err
	}
	if color != "" {
		if err := checkHexColor(CodeTrim, color); err != nil {
			return err
		}
	}
	s.set(TrimOption{
		threshold:       threshold,
		color:           color,
		equalHorizontal: equalHorizontal,
		equalVertical:   equalVertical,
	})
	return nil
}

// WithoutTrim removes the trim.
func (s *OptionSet) WithoutTrim() { s.Unset(CodeTrim) }

// Trim returns the trim option, if set.
func (s *OptionSet) Trim() (TrimOption, bool) { return lookup[TrimOption](s, CodeTrim) }

// WithRotate rotates the result clockwise.
func (s *OptionSet) WithRotate(r Rotation) error {
	if err := r.Validate(); err != nil {
		return wrapOptionError(CodeRotate, err)
	}
	s.setInt(CodeRotate, int(r))
	return nil
}

// WithoutRotate removes the rotation.
func (s *OptionSet) WithoutRotate() { s.Unset(CodeRotate) }

// Rotate returns the rotation, if set.
func (s *OptionSet) Rotate() (Rotation, bool) {
	v, ok := s.intValue(CodeRotate)
	return Rotation(v), ok
}
