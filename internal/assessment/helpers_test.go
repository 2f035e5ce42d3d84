package assessment

import (
	"github.com/alexanderramin/epeat/internal/testutil"
)

func smallCatalogs() Catalogs {
	return Catalogs{
		Documentation: testutil.SmallDocumentation(),
		SelfRating:    testutil.SmallSelfRating(),
		Risks:         testutil.SmallRisks(),
	}
}
