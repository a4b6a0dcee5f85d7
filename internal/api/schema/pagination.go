package schema

import (
	"net/http"
	"strconv"

	"github.com/cfelipe-app/Route/internal/query"
)

// HeaderTotalCount carries the total amount of records matching a paged listing request
const HeaderTotalCount = "X-Total-Count"

// WritePage writes a pagination envelope and exposes its total in the X-Total-Count header
func WritePage[T any](writer *Writer, rw http.ResponseWriter, page *query.Page[T]) {
	rw.Header().Set(HeaderTotalCount, strconv.FormatUint(page.Total, 10))
	writer.WriteJSON(rw, page)
}
