package tracker

import "github.com/dmitrijs2005/jobtracker/internal/client/models"

// MergeCreated returns a new list with rec appended.
func MergeCreated(list []models.Application, rec models.Application) []models.Application {
	out := make([]models.Application, len(list), len(list)+1)
	copy(out, list)
	return append(out, rec)
}

// MergeUpdated returns a new list where the record with rec.ID is replaced in
// place. Positions of all records are kept; an unknown ID leaves the list
// unchanged.
func MergeUpdated(list []models.Application, rec models.Application) []models.Application {
	out := make([]models.Application, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == rec.ID {
			out[i] = rec
		}
	}
	return out
}

// Remove returns a new list without the record with the given id.
func Remove(list []models.Application, id int64) []models.Application {
	out := make([]models.Application, 0, len(list))
	for _, a := range list {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}

func find(list []models.Application, id int64) (models.Application, bool) {
	for _, a := range list {
		if a.ID == id {
			return a, true
		}
	}
	return models.Application{}, false
}
