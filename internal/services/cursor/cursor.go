package services

import (
	"sync"

	"inkai_studio/internal/domain/models"
)

// ViewState временное состояние детального просмотра, сбрасывается
// при открытии другого дизайна
type ViewState struct {
	Zoom            float64
	ShowBeforeAfter bool
	SliderPosition  int
}

func defaultViewState() ViewState {
	return ViewState{
		Zoom:           1.0,
		SliderPosition: 50,
	}
}

// Cursor отслеживает открытый в детальном просмотре дизайн.
// Состояния: Closed и Open(item); других переходов нет.
// Next/Previous пересчитывают позицию по свежеотфильтрованному списку,
// а не по замороженному индексу: между открытием и навигацией фильтр
// мог измениться.
type Cursor struct {
	list func() []models.GalleryItem

	mu   sync.Mutex
	item *models.GalleryItem
	view ViewState
}

// NewCursor принимает поставщика текущего отфильтрованного списка
func NewCursor(list func() []models.GalleryItem) *Cursor {
	return &Cursor{
		list: list,
		view: defaultViewState(),
	}
}

// Open переводит курсор на дизайн и сбрасывает состояние просмотра
func (c *Cursor) Open(item models.GalleryItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.item = &item
	c.view = defaultViewState()
}

// Close закрывает детальный просмотр
func (c *Cursor) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.item = nil
	c.view = defaultViewState()
}

// Current возвращает открытый дизайн, если он есть
func (c *Cursor) Current() (models.GalleryItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.item == nil {
		return models.GalleryItem{}, false
	}
	return *c.item, true
}

func (c *Cursor) View() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *Cursor) SetZoom(zoom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Zoom = zoom
}

func (c *Cursor) ToggleBeforeAfter() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.ShowBeforeAfter = !c.view.ShowBeforeAfter
}

// Enabled навигация осмысленна, когда в отфильтрованном списке
// больше одного элемента
func (c *Cursor) Enabled() bool {
	return len(c.list()) > 1
}

// Resolve возвращает позицию открытого дизайна в текущем списке.
// ok=false: курсор закрыт, список пуст либо дизайн отфильтрован
// из-под открытого просмотра (индекс -1).
func (c *Cursor) Resolve() (int, bool) {
	c.mu.Lock()
	item := c.item
	c.mu.Unlock()

	if item == nil {
		return -1, false
	}

	idx := indexOf(c.list(), item.ID)
	return idx, idx >= 0
}

// Next переходит к следующему дизайну с переходом через край списка
func (c *Cursor) Next() (models.GalleryItem, bool) {
	return c.step(+1)
}

// Previous переходит к предыдущему дизайну; с нулевого индекса —
// на последний
func (c *Cursor) Previous() (models.GalleryItem, bool) {
	return c.step(-1)
}

func (c *Cursor) step(delta int) (models.GalleryItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.item == nil {
		return models.GalleryItem{}, false
	}

	items := c.list()
	if len(items) == 0 {
		// Пустой список: открытым не может быть ничего
		c.item = nil
		c.view = defaultViewState()
		return models.GalleryItem{}, false
	}

	// Индекс ищется в живом списке; -1 (дизайн отфильтрован) дает
	// переход от края, см. DESIGN.md
	idx := indexOf(items, c.item.ID)
	next := idx + delta
	if next >= len(items) {
		next = 0
	}
	if next < 0 {
		next = len(items) - 1
	}

	item := items[next]
	c.item = &item
	c.view = defaultViewState()
	return item, true
}

func indexOf(items []models.GalleryItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
