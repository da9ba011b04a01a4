package handlers

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/medical-record-api/config"
)

// returnUpdated makes FindOneAndUpdate hand back the document after the update
var returnUpdated = options.FindOneAndUpdate().SetReturnDocument(options.After)

// objectIDVar reads the route variable key as an ObjectID. A malformed id is
// reported as not found, there can be no document behind it.
func objectIDVar(w http.ResponseWriter, r *http.Request, key string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)[key])
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusNotFound, w, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

// lookupStatus maps an error from a lookup by id to the status returned to the client
func lookupStatus(err error) int {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func decodeBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeResponse(w http.ResponseWriter, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func byIDs(ids []primitive.ObjectID) bson.M {
	return bson.M{"_id": bson.M{"$in": ids}}
}

// orderByIDs returns docs in the order of ids. Ids without a document are
// skipped and a repeated id repeats its document.
func orderByIDs[T any](ids []primitive.ObjectID, docs []T, idOf func(T) primitive.ObjectID) []T {
	found := make(map[primitive.ObjectID]T, len(docs))
	for _, d := range docs {
		found[idOf(d)] = d
	}
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if d, ok := found[id]; ok {
			out = append(out, d)
		}
	}
	return out
}
