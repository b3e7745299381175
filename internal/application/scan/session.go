package scan

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-console/internal/domain"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// defaultSessionTTL tiempo de inactividad tras el cual una sesión abandonada
// se cierra sola; garantiza que la cámara no quede tomada si el navegador
// desaparece sin cerrar.
const defaultSessionTTL = 5 * time.Minute

// session una sesión de escaneo viva con su marca de último acceso.
type session struct {
	resolver *Resolver
	lastSeen time.Time
}

// Manager administra las sesiones de escaneo de la consola: cada modal de
// escáner abierto en un navegador es una sesión con su propio resolver.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session

	lookup  ProductLookup
	factory AdapterFactory
	log     *logger.Logger
	ttl     time.Duration
	now     func() time.Time
}

// NewManager construye el administrador de sesiones. Si factory es nil usa
// los adaptadores por defecto (streams de cámara + entrada manual).
func NewManager(lookup ProductLookup, factory AdapterFactory, log *logger.Logger) *Manager {
	m := &Manager{
		sessions: make(map[string]*session),
		lookup:   lookup,
		factory:  factory,
		log:      log.Component("scanner"),
		ttl:      defaultSessionTTL,
		now:      time.Now,
	}
	if m.factory == nil {
		m.factory = m.defaultFactory
	}
	return m
}

// defaultFactory adaptadores reales: streams de cámara para qr/barcode,
// entrada manual para manual.
func (m *Manager) defaultFactory(source entity.ScanSource, onDecode DecodeFunc, onError ErrorFunc) CaptureAdapter {
	if source == entity.SourceManual {
		return NewManualAdapter(onDecode, onError)
	}
	return NewStreamAdapter(source, onDecode, onError, m.log)
}

// Create abre una sesión nueva en Capturing(qr) y devuelve su ID.
func (m *Manager) Create() (string, *Resolver, error) {
	resolver, err := NewResolver(m.lookup, m.factory, m.log)
	if err != nil {
		return "", nil, err
	}

	id := uuid.New().String()
	m.mu.Lock()
	m.sessions[id] = &session{resolver: resolver, lastSeen: m.now()}
	m.mu.Unlock()

	m.log.Debug().Str("session", id).Msg("sesión de escaneo abierta")
	return id, resolver, nil
}

// Get devuelve el resolver de una sesión viva y refresca su último acceso.
func (m *Manager) Get(id string) (*Resolver, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	s.lastSeen = m.now()
	return s.resolver, nil
}

// Close cierra y elimina una sesión. Cerrar una sesión inexistente no es error.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		s.resolver.Close()
		m.log.Debug().Str("session", id).Msg("sesión de escaneo cerrada")
	}
}

// Run expira sesiones inactivas hasta que el contexto se cancele.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.closeAll()
			return
		case <-ticker.C:
			m.expire()
		}
	}
}

func (m *Manager) expire() {
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	var stale []*session
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			stale = append(stale, s)
			delete(m.sessions, id)
			m.log.Info().Str("session", id).Msg("sesión de escaneo expirada por inactividad")
		}
	}
	m.mu.Unlock()

	for _, s := range stale {
		s.resolver.Close()
	}
}

func (m *Manager) closeAll() {
	m.mu.Lock()
	all := make([]*session, 0, len(m.sessions))
	for id, s := range m.sessions {
		all = append(all, s)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for _, s := range all {
		s.resolver.Close()
	}
}
