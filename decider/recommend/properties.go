package recommend

import (
	"github.com/magiconair/properties"
)

// LoadOptions reads mock knobs from a .properties file on top of the
// defaults. An empty path returns the defaults.
//
//	recommend.delay = 1500ms
//	rating.delay    = 500ms
//	save.delay      = 300ms
//	recommend.fail  = false
//	rating.fail     = false
//	save.fail       = false
//	seed            = 42
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if path == "" {
		return opts, nil
	}
	props, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return opts, err
	}
	return optionsFrom(props, opts), nil
}

func optionsFrom(props *properties.Properties, opts Options) Options {
	opts.RecommendDelay = props.GetParsedDuration("recommend.delay", opts.RecommendDelay)
	opts.RatingDelay = props.GetParsedDuration("rating.delay", opts.RatingDelay)
	opts.SaveDelay = props.GetParsedDuration("save.delay", opts.SaveDelay)
	opts.FailRecommend = props.GetBool("recommend.fail", opts.FailRecommend)
	opts.FailRating = props.GetBool("rating.fail", opts.FailRating)
	opts.FailSave = props.GetBool("save.fail", opts.FailSave)
	opts.Seed = props.GetUint64("seed", opts.Seed)
	return opts
}
