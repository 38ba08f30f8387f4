package material

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Editors is the fixed roster credited on seeded materials.
var Editors = []Editor{
	{Name: "Magloire Numbi", AvatarURL: "https://ui-avatars.com/api/?name=Magloire+Numbi&background=0D8ABC&color=fff"},
	{Name: "Michelle Makudo", AvatarURL: "https://ui-avatars.com/api/?name=Michelle+Makudo&background=4DB276&color=fff"},
	{Name: "Tinyiko Baloyi", AvatarURL: "https://ui-avatars.com/api/?name=Tinyiko+Baloyi&background=BA4D4D&color=fff"},
}

var seedCreatedAt = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

// Seed stores one material per known type so a fresh catalog is not empty.
// Roughly one in four seeds is up to date and carries a pdf.
func (s *Service) Seed(ctx context.Context, rng *rand.Rand) error {
	now := s.now()

	for i, t := range Types {
		status := StatusNotUpToDate
		if rng.IntN(4) == 0 {
			status = StatusUpToDate
		}

		m := Material{
			Name:        t.Name,
			Description: strPtr(t.Description),
			Category:    t.Slug(),
			Status:      status,
			Icon:        t.Icon,
			Editor:      Editors[i%len(Editors)],
			CreatedAt:   seedCreatedAt,
			UpdatedAt:   now.AddDate(0, 0, -(rng.IntN(7) + 1)),
		}

		var size int64
		if status == StatusUpToDate {
			size = rng.Int64N(5_000_000) + 500_000
			m.FileName = strPtr(strings.ReplaceAll(strings.ToLower(t.Name), " ", "_") + ".pdf")
			m.MimeType = strPtr("application/pdf")
		}
		m.FileSize = &size

		if _, err := s.repo.Create(ctx, m); err != nil {
			return fmt.Errorf("seed %q: %w", t.Name, err)
		}
	}

	s.log.Debug("catalog seeded", "count", len(Types))
	return nil
}
