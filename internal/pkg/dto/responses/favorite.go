package responses

// FavoriteIDs lists directory ids verbatim and registry NPIs stringified so
// every id shares one comparable string type.
type FavoriteIDs struct {
	Favorites []string `json:"favorites"`
}

type FavoriteProviders struct {
	Providers []Provider `json:"providers"`
}
