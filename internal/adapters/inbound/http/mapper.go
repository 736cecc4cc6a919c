package http

import (
	"github.com/unimarket/semantic-search/internal/domain"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}
	switch e := err.(type) {
	case *domain.ValidationErr:
		errResp.Error.Code = BADREQUEST
		errResp.Error.Message = e.Error()
	case *domain.NotFoundErr:
		errResp.Error.Code = NOTFOUND
		errResp.Error.Message = e.Error()
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toItem(i domain.Item) Item {
	return Item{
		Id:          i.ID,
		CampusId:    i.CampusID,
		Title:       i.Title,
		Description: i.Description,
		Price:       i.Price,
		Status:      string(i.Status),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func toSearchResp(results []domain.SearchResult) SearchResp {
	resp := SearchResp{Results: []SearchResult{}}
	for _, r := range results {
		resp.Results = append(resp.Results, SearchResult{
			Item:  toItem(r.Item),
			Score: r.Score,
		})
	}
	return resp
}
