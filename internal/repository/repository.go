package repository

import (
	"github.com/spf13/afero"
)

type Repository struct {
	*CardsR
	*LogR
}

func NewRepository(fs afero.Fs) Repository {
	return Repository{
		CardsR: NewCardsRepository(fs),
		LogR:   NewLogRepository(fs),
	}
}
