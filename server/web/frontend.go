package web

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/sagarsuperuser/marketnav/navigation"
	"github.com/sagarsuperuser/marketnav/server/metrics"
)

// Frontend serves the shell page for every navigable path. The page carries
// the resolved view identifier as the mount point for the client bundle.
type Frontend struct {
	templates *TemplateStore
	router    *navigation.Router
	metrics   *metrics.Metrics
}

type menuLink struct {
	Name   string
	Active bool
}

type menuSection struct {
	Role  navigation.Role
	Label string
	Links []menuLink
}

type pageData struct {
	Title    string
	Path     string
	Route    navigation.RouteDefinition
	Viewer   navigation.Role
	Roles    []navigation.Role
	Menu     []menuSection
	HomePath string
}

const roleCookieName = "ui_role"
const roleCookieMaxAgeSeconds = 30 * 24 * 60 * 60

var sectionLabels = map[navigation.Role]string{
	navigation.RoleNone:     "Marketplace",
	navigation.RoleFarmer:   "Farmer",
	navigation.RoleTraveler: "Traveler",
}

func NewFrontend(router *navigation.Router, m *metrics.Metrics) (*Frontend, error) {
	templates, err := NewTemplateStore(template.FuncMap{
		"pathFor": router.PathFor,
	})
	if err != nil {
		return nil, err
	}

	return &Frontend{
		templates: templates,
		router:    router,
		metrics:   m,
	}, nil
}

// RegisterRoutes installs the catch-all page handler. It must be registered
// after every other route on r.
func (f *Frontend) RegisterRoutes(r *mux.Router) {
	r.PathPrefix("/").Methods(http.MethodGet, http.MethodHead).HandlerFunc(f.viewPage)
}

func (f *Frontend) viewPage(w http.ResponseWriter, r *http.Request) {
	viewer := f.viewerRole(w, r)

	route, err := f.router.Match(r.URL.Path)
	f.metrics.ObserveResolution(metrics.KindPath, err)

	data := pageData{
		Path:     r.URL.Path,
		Viewer:   viewer,
		Roles:    navigation.Roles,
		HomePath: f.homePath(),
	}

	if err != nil {
		var notFound *navigation.NotFoundError
		if !errors.As(err, &notFound) {
			f.serverError(w, err)
			return
		}
		hlog.FromRequest(r).Debug().Str("path", r.URL.Path).Msg("no route for path")
		data.Title = "Not Found"
		data.Menu = f.menu(viewer, "")
		f.templates.Render(w, http.StatusNotFound, "not_found.html", data)
		return
	}

	data.Title = string(route.View)
	data.Route = route
	data.Menu = f.menu(viewer, route.Name)
	setNoCacheHeaders(w)
	f.templates.Render(w, http.StatusOK, "view.html", data)
}

// viewerRole picks the role used to filter the menu. A valid ?role= is
// remembered in a cookie; anything else falls back to the cookie, then to
// RoleNone.
func (f *Frontend) viewerRole(w http.ResponseWriter, r *http.Request) navigation.Role {
	if raw := r.URL.Query().Get("role"); raw != "" {
		if role, err := navigation.ParseRole(raw); err == nil {
			http.SetCookie(w, &http.Cookie{
				Name:     roleCookieName,
				Value:    string(role),
				Path:     "/",
				MaxAge:   roleCookieMaxAgeSeconds,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			return role
		}
	}
	if c, err := r.Cookie(roleCookieName); err == nil {
		if role, err := navigation.ParseRole(c.Value); err == nil {
			return role
		}
	}
	return navigation.RoleNone
}

func (f *Frontend) menu(viewer navigation.Role, active string) []menuSection {
	visible := f.router.Table().Filter(navigation.Guard(viewer))

	var sections []menuSection
	for _, role := range navigation.Roles {
		section := menuSection{Role: role, Label: sectionLabels[role]}
		for _, def := range visible {
			if def.Role == role {
				section.Links = append(section.Links, menuLink{
					Name:   def.Name,
					Active: def.Name == active,
				})
			}
		}
		if len(section.Links) > 0 {
			sections = append(sections, section)
		}
	}
	return sections
}

func (f *Frontend) homePath() string {
	if path, err := f.router.PathFor("home"); err == nil {
		return path
	}
	return "/"
}

func (f *Frontend) serverError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("frontend error")
	http.Error(w, "unexpected server error", http.StatusInternalServerError)
}

func setNoCacheHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Cache-Control", "no-store")
}
