package services

import (
	"sort"

	"github.com/socialgraph/friendsdb/internal/store"
	"gorm.io/gorm"
)

// GraphNode is one user in the full-graph projection.
type GraphNode struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Age     int      `json:"age"`
	Score   float64  `json:"score"`
	Hobbies []string `json:"hobbies"`
}

// GraphEdge is one friendship in the full-graph projection, in canonical
// stored orientation.
type GraphEdge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// GraphResult is the read model consumed by visualization layers.
type GraphResult struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// GraphView projects the whole graph from one transaction: four
// set-oriented reads, then scores computed in memory. An edge whose
// endpoint vanished mid-flight is filtered out rather than failing the
// whole projection.
func GraphView(db *gorm.DB) (GraphResult, error) {
	var result GraphResult
	err := db.Transaction(func(tx *gorm.DB) error {
		users, err := store.ListAllUsers(tx)
		if err != nil {
			return err
		}
		edges, err := store.ListAllFriendships(tx)
		if err != nil {
			return err
		}
		links, err := store.ListUserHobbyLinks(tx)
		if err != nil {
			return err
		}
		hobbies, err := store.ListAllHobbies(tx)
		if err != nil {
			return err
		}

		known := make(map[string]bool, len(users))
		for _, user := range users {
			known[user.UserID] = true
		}

		hobbyNames := make(map[string]string, len(hobbies))
		for _, hobby := range hobbies {
			hobbyNames[hobby.HobbyID] = hobby.Name
		}

		userHobbies := make(map[string]map[string]bool, len(users))
		for _, link := range links {
			set := userHobbies[link.UserID]
			if set == nil {
				set = make(map[string]bool)
				userHobbies[link.UserID] = set
			}
			set[link.HobbyID] = true
		}

		adjacency := make(map[string][]string, len(users))
		result.Edges = make([]GraphEdge, 0, len(edges))
		for _, edge := range edges {
			if !known[edge.LoUserID] || !known[edge.HiUserID] {
				continue
			}
			adjacency[edge.LoUserID] = append(adjacency[edge.LoUserID], edge.HiUserID)
			adjacency[edge.HiUserID] = append(adjacency[edge.HiUserID], edge.LoUserID)
			result.Edges = append(result.Edges, GraphEdge{
				ID:     edge.FriendshipID,
				Source: edge.LoUserID,
				Target: edge.HiUserID,
			})
		}

		result.Nodes = make([]GraphNode, 0, len(users))
		for _, user := range users {
			names := make([]string, 0, len(userHobbies[user.UserID]))
			for hobbyID := range userHobbies[user.UserID] {
				names = append(names, hobbyNames[hobbyID])
			}
			sort.Strings(names)

			result.Nodes = append(result.Nodes, GraphNode{
				ID:      user.UserID,
				Name:    user.Name,
				Age:     user.Age,
				Score:   scoreFromSets(user.UserID, adjacency, userHobbies),
				Hobbies: names,
			})
		}
		return nil
	})
	return result, err
}

// scoreFromSets computes the popularity score from in-memory adjacency and
// hobby sets, mirroring popularityScore without extra reads per node.
func scoreFromSets(userID string, adjacency map[string][]string, userHobbies map[string]map[string]bool) float64 {
	friends := adjacency[userID]
	if len(friends) == 0 {
		return 0
	}

	mine := userHobbies[userID]
	shared := make(map[string]bool)
	for _, friendID := range friends {
		for hobbyID := range userHobbies[friendID] {
			if mine[hobbyID] {
				shared[hobbyID] = true
			}
		}
	}

	return float64(len(friends)) + 0.5*float64(len(shared))
}
