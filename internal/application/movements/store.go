// Package movements contiene el núcleo del panel: el store de movimientos de
// inventario con transiciones optimistas (aprobar/rechazar) contra un backend
// simulado, y el proyector de la vista filtrada/ordenada.
package movements

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/logistics-panel-api/internal/domain"
	"github.com/jhoicas/logistics-panel-api/internal/domain/entity"
)

// Latencias simuladas por defecto; el rechazo modela una operación de
// eliminación más pesada que la aprobación.
const (
	DefaultApproveLatency = 100 * time.Millisecond
	DefaultRejectLatency  = 500 * time.Millisecond
)

// Operaciones del backend simulado.
const (
	opApprove = "approve"
	opReject  = "reject"
)

// Result resultado uniforme de toda operación del store. Nunca se propaga un
// error al caller: el último fallo queda como estado del store hasta un
// ClearError.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	// Kind clasifica el fallo con un centinela de domain (nil en éxito);
	// la capa HTTP lo mapea a código de estado con errors.Is.
	Kind error `json:"-"`
}

// Config parámetros del store.
type Config struct {
	ApproveLatency time.Duration
	RejectLatency  time.Duration

	// Fault simula un fallo del backend durante la espera (nil = siempre
	// éxito, el único desenlace del diseño actual). Usado en pruebas para
	// ejercitar la reversión.
	Fault func(op, movementID string) error
}

// Store posee la colección canónica de movimientos y ejecuta las transiciones
// de estado con protocolo de tres fases: mutación optimista → espera del
// efecto externo simulado → confirmación o reversión.
//
// Política de concurrencia: las operaciones sobre un mismo movimiento se
// serializan con un mutex por ID; operaciones sobre IDs distintos corren en
// paralelo, cada una con su propia mutación optimista. La colección y los
// campos loading/error son propiedad exclusiva del store; los lectores solo
// reciben copias.
type Store struct {
	cfg      Config
	notifier Notifier

	mu        sync.RWMutex
	list      []entity.Movement
	loading   int // operaciones en vuelo; >0 ⇒ Loading()
	lastError string

	opMu  sync.Mutex
	byID  map[string]*sync.Mutex // serialización por movimiento
	subs  []func()
	subMu sync.Mutex
}

// NewStore construye el store con la colección semilla. El notifier puede ser
// nil (sin notificaciones). Las latencias en cero toman los valores por
// defecto.
func NewStore(seed []entity.Movement, notifier Notifier, cfg Config) *Store {
	if cfg.ApproveLatency == 0 {
		cfg.ApproveLatency = DefaultApproveLatency
	}
	if cfg.RejectLatency == 0 {
		cfg.RejectLatency = DefaultRejectLatency
	}
	list := make([]entity.Movement, len(seed))
	copy(list, seed)
	return &Store{
		cfg:      cfg,
		notifier: notifier,
		list:     list,
		byID:     make(map[string]*sync.Mutex),
	}
}

// Approve aprueba un movimiento pendiente.
//
// La mutación optimista (status=approved + sello de tiempo) se aplica de forma
// síncrona, visible para lecturas concurrentes antes de que empiece la espera
// simulada. Si el backend simulado falla, se revierte al estado previo
// capturado antes de la escritura optimista.
func (s *Store) Approve(ctx context.Context, movementID string) Result {
	if strings.TrimSpace(movementID) == "" {
		return s.fail(domain.ErrInvalidInput, "se requiere el ID del movimiento")
	}

	unlock := s.lockMovement(movementID)
	defer unlock()

	s.mu.Lock()
	s.loading++
	s.lastError = ""
	idx := s.indexLocked(movementID)
	if idx < 0 {
		s.loading--
		s.mu.Unlock()
		return s.fail(domain.ErrNotFound, "movimiento no encontrado")
	}
	if s.list[idx].Status == entity.MovementStatusApproved {
		s.loading--
		s.mu.Unlock()
		return s.fail(domain.ErrConflict, "el movimiento ya fue aprobado")
	}

	// Fase 1: escritura optimista, con el valor previo capturado antes
	prevStatus := s.list[idx].Status
	prevApprovedAt := s.list[idx].ApprovedAt
	now := time.Now()
	s.list[idx].Status = entity.MovementStatusApproved
	s.list[idx].ApprovedAt = &now
	s.mu.Unlock()
	s.notifyChange()

	// Fase 2: efecto externo simulado
	err := s.settle(ctx, opApprove, movementID, s.cfg.ApproveLatency)

	// Fase 3: confirmar o revertir
	s.mu.Lock()
	s.loading--
	if err != nil {
		// La reversión apunta al ID, no a la posición: otra mutación pudo
		// correr durante la espera
		if i := s.indexLocked(movementID); i >= 0 {
			if prevStatus == "" {
				prevStatus = entity.MovementStatusPending
			}
			s.list[i].Status = prevStatus
			s.list[i].ApprovedAt = prevApprovedAt
		}
		s.lastError = err.Error()
		s.mu.Unlock()
		s.notifyChange()
		return s.report(Result{Success: false, Message: err.Error(), Kind: domain.ErrOperationFailed})
	}
	s.mu.Unlock()
	s.notifyChange()

	return s.report(Result{Success: true, Message: "movimiento aprobado correctamente"})
}

// Reject rechaza un movimiento: lo retira de la colección activa de forma
// optimista antes de la espera simulada (más larga que la de Approve). Si el
// backend simulado falla, el movimiento se reinserta en su posición original
// para mantener la reversión simétrica con Approve.
func (s *Store) Reject(ctx context.Context, movementID string) Result {
	if strings.TrimSpace(movementID) == "" {
		return s.fail(domain.ErrInvalidInput, "se requiere el ID del movimiento")
	}

	unlock := s.lockMovement(movementID)
	defer unlock()

	s.mu.Lock()
	s.loading++
	s.lastError = ""
	idx := s.indexLocked(movementID)
	if idx < 0 {
		s.loading--
		s.mu.Unlock()
		return s.fail(domain.ErrNotFound, "movimiento no encontrado")
	}
	if s.list[idx].Status == entity.MovementStatusRejected {
		s.loading--
		s.mu.Unlock()
		return s.fail(domain.ErrConflict, "el movimiento ya fue rechazado")
	}

	// Fase 1: retiro optimista, conservando el valor y la posición previos
	removed := s.list[idx]
	removedIdx := idx
	s.list = append(s.list[:idx], s.list[idx+1:]...)
	s.mu.Unlock()
	s.notifyChange()

	// Fase 2: efecto externo simulado
	err := s.settle(ctx, opReject, movementID, s.cfg.RejectLatency)

	// Fase 3: confirmar o reinsertar
	s.mu.Lock()
	s.loading--
	if err != nil {
		if s.indexLocked(movementID) < 0 {
			i := removedIdx
			if i > len(s.list) {
				i = len(s.list)
			}
			s.list = append(s.list[:i], append([]entity.Movement{removed}, s.list[i:]...)...)
		}
		s.lastError = err.Error()
		s.mu.Unlock()
		s.notifyChange()
		return s.report(Result{Success: false, Message: err.Error(), Kind: domain.ErrOperationFailed})
	}
	s.mu.Unlock()
	s.notifyChange()

	return s.report(Result{Success: true, Message: "movimiento rechazado y retirado"})
}

// ClearError limpia el último error registrado. Sin otro efecto.
func (s *Store) ClearError() {
	s.mu.Lock()
	s.lastError = ""
	s.mu.Unlock()
}

// Movements devuelve una copia de la colección activa.
func (s *Store) Movements() []entity.Movement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Movement, len(s.list))
	copy(out, s.list)
	return out
}

// Get devuelve una copia del movimiento por ID, si existe.
func (s *Store) Get(movementID string) (entity.Movement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexLocked(movementID); i >= 0 {
		return s.list[i], true
	}
	return entity.Movement{}, false
}

// Loading indica si hay alguna operación en vuelo.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading > 0
}

// Err devuelve el último fallo registrado ("" si no hay).
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// PendingCount cuenta los movimientos en estado pendiente.
func (s *Store) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for i := range s.list {
		if s.list[i].Status == entity.MovementStatusPending {
			count++
		}
	}
	return count
}

// Subscribe registra un callback que se invoca tras cada cambio observable de
// la colección. Los callbacks corren fuera de los locks del store.
func (s *Store) Subscribe(fn func()) {
	s.subMu.Lock()
	s.subs = append(s.subs, fn)
	s.subMu.Unlock()
}

// ── internos ──────────────────────────────────────────────────────────────────

// settle modela la llamada remota: espera la latencia y consulta el hook de
// fallo. Sin soporte de cancelación: una vez iniciada, la operación siempre
// llega a confirmación o reversión.
func (s *Store) settle(_ context.Context, op, movementID string, latency time.Duration) error {
	time.Sleep(latency)
	if s.cfg.Fault != nil {
		return s.cfg.Fault(op, movementID)
	}
	return nil
}

// indexLocked busca la posición del movimiento. Requiere s.mu tomado.
func (s *Store) indexLocked(movementID string) int {
	for i := range s.list {
		if s.list[i].ID == movementID {
			return i
		}
	}
	return -1
}

// lockMovement serializa las operaciones sobre un mismo ID.
func (s *Store) lockMovement(movementID string) func() {
	s.opMu.Lock()
	m, ok := s.byID[movementID]
	if !ok {
		m = &sync.Mutex{}
		s.byID[movementID] = m
	}
	s.opMu.Unlock()

	m.Lock()
	return m.Unlock
}

// fail registra el error como estado del store y lo reporta como resultado.
func (s *Store) fail(err error, message string) Result {
	if message == "" {
		message = err.Error()
	}
	s.mu.Lock()
	s.lastError = message
	s.mu.Unlock()
	return s.report(Result{Success: false, Message: message, Kind: err})
}

// report envía el desenlace a la cola de notificaciones, si hay.
func (s *Store) report(r Result) Result {
	if s.notifier != nil {
		if r.Success {
			s.notifier.Success(r.Message)
		} else {
			s.notifier.Error(r.Message)
		}
	}
	return r
}

// notifyChange avisa a los suscriptores de un cambio en la colección.
func (s *Store) notifyChange() {
	s.subMu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
