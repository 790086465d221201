package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tingtong/internal/model"
	"github.com/sandeepkv93/tingtong/internal/views"
)

func (m Model) handleBoardKey(msg tea.KeyMsg) Model {
	grouped := m.App.Cards(m.ActiveBoard)
	stage := model.Stages[m.StageCursor]
	cards := grouped[stage]

	switch msg.String() {
	case "h", "left":
		if m.StageCursor > 0 {
			m.StageCursor--
			m.CardCursor = 0
		}
	case "l", "right":
		if m.StageCursor < len(model.Stages)-1 {
			m.StageCursor++
			m.CardCursor = 0
		}
	case "j", "down":
		if m.CardCursor < len(cards)-1 {
			m.CardCursor++
		}
	case "k", "up":
		if m.CardCursor > 0 {
			m.CardCursor--
		}
	case "H":
		m = m.moveSelectedCard(cards, -1)
	case "L":
		m = m.moveSelectedCard(cards, 1)
	case "d":
		if card, ok := m.selectedCard(cards); ok {
			if err := m.App.DeleteCard(m.ctx, card.ID); err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
			} else {
				m.Status = StatusBar{Text: "deleted card: " + card.Name}
				if m.CardCursor > 0 {
					m.CardCursor--
				}
			}
		}
	}
	return m
}

func (m Model) moveSelectedCard(cards []model.Card, dir int) Model {
	card, ok := m.selectedCard(cards)
	if !ok {
		return m
	}
	next := m.StageCursor + dir
	if next < 0 || next >= len(model.Stages) {
		return m
	}
	if err := m.App.MoveCard(m.ctx, card.ID, model.Stages[next]); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.StageCursor = next
	m.CardCursor = 0
	return m
}

func (m Model) selectedCard(cards []model.Card) (model.Card, bool) {
	if m.CardCursor < 0 || m.CardCursor >= len(cards) {
		return model.Card{}, false
	}
	return cards[m.CardCursor], true
}

func (m Model) renderBoardView() string {
	board := m.boardMeta()
	grouped := m.App.Cards(m.ActiveBoard)

	columns := make([]views.BoardColumnData, 0, len(model.Stages))
	for _, stage := range model.Stages {
		col := views.BoardColumnData{Stage: string(stage)}
		for _, card := range grouped[stage] {
			col.Cards = append(col.Cards, views.CardItemData{ID: card.ID, Name: card.Name})
		}
		columns = append(columns, col)
	}
	return views.RenderBoardPanel(views.BoardPanelData{
		Title:       board.Name,
		Emoji:       board.Emoji,
		Columns:     columns,
		StageCursor: m.StageCursor,
		CardCursor:  m.CardCursor,
	})
}

func (m Model) boardMeta() model.Collection {
	for _, c := range m.App.Boards() {
		if c.Key == m.ActiveBoard {
			return c
		}
	}
	return model.Collection{Name: m.ActiveBoard, Emoji: "🗂️"}
}
