package services

import (
	"log/slog"
	"sync"
	"time"

	"inkai_studio/internal/domain/models"
)

const DefaultSearchDebounce = 300 * time.Millisecond

// Holder единственный источник истины для активного запроса галереи.
// Все мутации проходят через Update/Clear/Toggle/SetSearchQuery,
// потребители не пишут в состояние напрямую.
type Holder struct {
	log *slog.Logger

	mu    sync.Mutex
	state models.FilterState

	// Дебаунс поиска: черновик виден сразу, в состояние попадает
	// только после паузы ввода. Последнее нажатие побеждает.
	debounce time.Duration
	draft    string
	seq      uint64
	timer    *time.Timer

	subscribers []func(models.FilterState)
}

func NewHolder(log *slog.Logger, debounce time.Duration) *Holder {
	if debounce <= 0 {
		debounce = DefaultSearchDebounce
	}

	return &Holder{
		log:      log,
		state:    models.DefaultFilterState(),
		debounce: debounce,
	}
}

// State возвращает текущее зафиксированное состояние
func (h *Holder) State() models.FilterState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Draft текущее значение строки поиска, включая незафиксированный ввод
func (h *Holder) Draft() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.timer != nil {
		return h.draft
	}
	return h.state.SearchQuery
}

// Subscribe регистрирует подписчика; вызывается один раз на каждый
// зафиксированный переход состояния
func (h *Holder) Subscribe(fn func(models.FilterState)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers = append(h.subscribers, fn)
}

// Update вливает частичное обновление в состояние
func (h *Holder) Update(update models.FilterUpdate) {
	h.mu.Lock()
	h.state = h.state.Merge(update)
	next := h.state
	subs := h.snapshotSubscribers()
	h.mu.Unlock()

	h.notify(subs, next)
}

// Clear атомарно сбрасывает все поля к значениям по умолчанию:
// один переход, один пересчет у подписчиков
func (h *Holder) Clear() {
	h.mu.Lock()
	h.cancelPendingLocked()
	h.state = models.DefaultFilterState()
	next := h.state
	subs := h.snapshotSubscribers()
	h.mu.Unlock()

	h.notify(subs, next)
}

// Toggle добавляет или убирает значение множественного фильтра
func (h *Holder) Toggle(dimension models.FilterDimension, value string) {
	h.mu.Lock()
	h.state = h.state.Toggle(dimension, value)
	next := h.state
	subs := h.snapshotSubscribers()
	h.mu.Unlock()

	h.notify(subs, next)
}

// SetSearchQuery принимает очередное нажатие. Фиксация откладывается
// до паузы ввода; каждое новое нажатие отменяет ранее запланированную.
func (h *Holder) SetSearchQuery(query string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.draft = query
	h.seq++
	seq := h.seq

	if h.timer != nil {
		h.timer.Stop()
	}

	h.timer = time.AfterFunc(h.debounce, func() {
		h.commitSearch(seq)
	})
}

// Flush немедленно фиксирует отложенный ввод (сворачивание вида, тесты)
func (h *Holder) Flush() {
	h.mu.Lock()
	if h.timer == nil {
		h.mu.Unlock()
		return
	}
	h.cancelPendingLocked()
	h.state.SearchQuery = h.draft
	next := h.state
	subs := h.snapshotSubscribers()
	h.mu.Unlock()

	h.notify(subs, next)
}

func (h *Holder) commitSearch(seq uint64) {
	h.mu.Lock()
	// Устаревший таймер: после планирования пришло новое нажатие
	if seq != h.seq {
		h.mu.Unlock()
		return
	}
	h.timer = nil
	h.state.SearchQuery = h.draft
	next := h.state
	subs := h.snapshotSubscribers()
	h.mu.Unlock()

	if h.log != nil {
		h.log.Debug("search query committed", slog.String("query", next.SearchQuery))
	}

	h.notify(subs, next)
}

func (h *Holder) cancelPendingLocked() {
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	h.seq++
}

func (h *Holder) snapshotSubscribers() []func(models.FilterState) {
	subs := make([]func(models.FilterState), len(h.subscribers))
	copy(subs, h.subscribers)
	return subs
}

// notify вызывается вне мьютекса, чтобы подписчик мог читать состояние
func (h *Holder) notify(subs []func(models.FilterState), state models.FilterState) {
	for _, fn := range subs {
		fn(state)
	}
}
