package cli

import (
	"github.com/posener/complete"
	"github.com/semmy-space/keyenv/internal/config"
	"github.com/semmy-space/keyenv/internal/logging"
)

// KeyPredictor completes the stored keys of the profile named by the last
// completed word, as in "keyenv unset dev <TAB>". Completion never prompts
// and stays silent on any failure.
func KeyPredictor() complete.Predictor {
	return keyPredictor(func() (*ManagerProvider, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		g := Globals{}
		return NewManagerProvider(currentIdentity(cfg), g.StoreOptions(cfg, logging.Discard())), nil
	})
}

func keyPredictor(provider func() (*ManagerProvider, error)) complete.Predictor {
	return complete.PredictFunc(func(args complete.Args) []string {
		if args.LastCompleted == "" {
			return nil
		}

		mp, err := provider()
		if err != nil {
			return nil
		}
		m, err := mp.Manager()
		if err != nil {
			return nil
		}
		entries, err := m.Entries(args.LastCompleted)
		if err != nil {
			return nil
		}

		keys := make([]string, 0, len(entries))
		for _, e := range entries {
			keys = append(keys, e.Key)
		}
		return keys
	})
}
