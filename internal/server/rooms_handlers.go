package server

import (
	"errors"
	"guessword/internal/players"
	"guessword/internal/rooms"
	"net/http"
	"net/url"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

const qrSize = 320

type roomInfo struct {
	RoomID       string           `json:"roomId"`
	Phase        rooms.Phase      `json:"phase"`
	Joinable     bool             `json:"joinable"`
	Participants []players.Player `json:"participants"`
	JoinURL      string           `json:"joinUrl"`
}

func (s *Server) joinURL(code string) string {
	return s.Cfg.BaseURL() + "/?room=" + url.QueryEscape(code)
}

func (s *Server) handleRoomInfo(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	code := rooms.NormalizeCode(ps.ByName("code"))
	if !rooms.ValidCode(code) {
		writeError(w, http.StatusNotFound, rooms.ErrRoomNotFound.Error())
		return
	}

	var info roomInfo
	err := s.Rooms.With(code, func(room *rooms.Room) error {
		info = roomInfo{
			RoomID:       room.Code,
			Phase:        room.Phase,
			Joinable:     room.Phase == rooms.PhaseWaiting && room.Players.Count() < rooms.MaxPlayers,
			Participants: room.Players.Snapshot(),
			JoinURL:      s.joinURL(room.Code),
		}
		return nil
	})
	if errors.Is(err, rooms.ErrRoomNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// handleRoomQR renders the room's join link as a PNG QR code.
func (s *Server) handleRoomQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	code := rooms.NormalizeCode(ps.ByName("code"))
	if !rooms.ValidCode(code) {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}
	if _, err := s.Rooms.Get(code); err != nil {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}

	png, err := qrcode.Encode(s.joinURL(code), qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}
