package render

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/y4hyya/Stellend/handler/codes"
)

type H map[string]interface{}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	JSONWithStatus(w, http.StatusOK, v)
}

// JSONWithStatus render with json and status code
func JSONWithStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Errorln("render json")
	}
}

// Error write error, status and code follow the error code
func Error(w http.ResponseWriter, err error) {
	status := codes.Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logrus.WithError(err).Errorln("internal error")
		msg = http.StatusText(status)
	}

	JSONWithStatus(w, status, H{"code": codes.Get(err), "msg": msg})
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	JSONWithStatus(w, http.StatusBadRequest, H{"code": codes.InvalidArguments, "msg": err.Error()})
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	JSONWithStatus(w, http.StatusNotFound, H{"code": 0, "msg": err.Error()})
}
