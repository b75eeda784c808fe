package app

import (
	"github.com/hmondejar/notekit/internal/auth"
	"github.com/hmondejar/notekit/internal/middleware"
	"github.com/hmondejar/notekit/internal/note"
	"github.com/hmondejar/notekit/internal/platform/jwt"
	"github.com/hmondejar/notekit/internal/platform/router"
	"github.com/hmondejar/notekit/internal/platform/validation"
)

func mountAuthRoutes(r router.Router, handler *auth.Handler, validator validation.Validator, signer jwt.Signer, maxBodySize int64) {
	r.Group("/auth", func(gr router.Router) {
		gr.Post("/register", handler.Register,
			middleware.DecodePayload[auth.RegisterRequest](maxBodySize),
			middleware.ValidateInput[auth.RegisterRequest](validator))
		gr.Post("/login", handler.Login,
			middleware.DecodePayload[auth.LoginRequest](maxBodySize),
			middleware.ValidateInput[auth.LoginRequest](validator))
		gr.Get("/me", handler.Me, auth.RequireToken(signer))
		gr.Put("/updatedetails", handler.UpdateDetails,
			auth.RequireToken(signer),
			middleware.DecodePayload[auth.UpdateDetailsRequest](maxBodySize),
			middleware.ValidateInput[auth.UpdateDetailsRequest](validator))
		gr.Put("/updatepassword", handler.UpdatePassword,
			auth.RequireToken(signer),
			middleware.DecodePayload[auth.UpdatePasswordRequest](maxBodySize),
			middleware.ValidateInput[auth.UpdatePasswordRequest](validator))
		gr.Post("/forgotpassword", handler.ForgotPassword,
			middleware.DecodePayload[auth.ForgotPasswordRequest](maxBodySize),
			middleware.ValidateInput[auth.ForgotPasswordRequest](validator))
		gr.Put("/resetpassword/{resettoken}", handler.ResetPassword,
			middleware.DecodePayload[auth.ResetPasswordRequest](maxBodySize),
			middleware.ValidateInput[auth.ResetPasswordRequest](validator))
		gr.Get("/verify/{id}", handler.VerifyEmail)
	})
}

func mountNoteRoutes(r router.Router, handler *note.Handler, validator validation.Validator, signer jwt.Signer, maxBodySize int64) {
	r.Group("/notes", func(gr router.Router) {
		gr.Get("", handler.ListNotes)
		gr.Post("", handler.CreateNote,
			middleware.DecodePayload[note.NoteRequest](maxBodySize),
			middleware.ValidateInput[note.NoteRequest](validator))
		gr.Put("/{id}", handler.UpdateNote,
			middleware.DecodePayload[note.NoteRequest](maxBodySize),
			middleware.ValidateInput[note.NoteRequest](validator))
		gr.Delete("/{id}", handler.DeleteNote)
	}, auth.RequireToken(signer))
}
