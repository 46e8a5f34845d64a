package dailystudy

import "github.com/jcom-dev/hebcal-engine/internal/hebcalc/hebrew"

// Options selects which study cycles to resolve for a year.
type Options struct {
	Categories []Category
}

func (o Options) wants(c Category) bool {
	for _, want := range o.Categories {
		if want == c {
			return true
		}
	}
	return false
}

// Generate appends every requested category's entries for year y into out.
func Generate(y hebrew.Year, opts Options, out *Buffer) error {
	if opts.wants(CategoryDafYomi) {
		if err := GenerateDafYomi(y, out); err != nil {
			return err
		}
	}
	if opts.wants(CategoryYerushalmiYomi) {
		if err := GenerateYerushalmiYomi(y, out); err != nil {
			return err
		}
	}
	if opts.wants(CategoryRambamOneChapter) {
		if err := GenerateRambamOneChapter(y, out); err != nil {
			return err
		}
	}
	if opts.wants(CategoryRambamThreeChapters) {
		if err := GenerateRambamThreeChapters(y, out); err != nil {
			return err
		}
	}
	return nil
}
